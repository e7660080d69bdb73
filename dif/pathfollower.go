// Package dif holds the record types of the interior file format that are
// read and written through package coder.
package dif

import "sutext.github.io/difio/coder"

// WayPoint is one node of a moving interior's path.
type WayPoint struct {
	Position      Point3F
	Rotation      QuatF
	MSToNext      uint32
	SmoothingType uint32
}

func (w *WayPoint) fields() []coder.Field {
	return []coder.Field{
		coder.ValueField("position", &w.Position),
		coder.ValueField("rotation", &w.Rotation),
		coder.ScalarField("msToNext", &w.MSToNext),
		coder.ScalarField("smoothingType", &w.SmoothingType),
	}
}

func (w *WayPoint) ReadFrom(d coder.Decoder) error {
	return coder.ReadFields(d, w.fields()...)
}

func (w *WayPoint) WriteTo(e coder.Encoder) error {
	return coder.WriteFields(e, w.fields()...)
}

// PathFollower drives a sub-object of an interior along its way points.
type PathFollower struct {
	Name             string
	Datablock        string
	InteriorResIndex uint32
	Offset           Point3F
	Properties       Dictionary
	TriggerIDs       []uint32
	WayPoints        []WayPoint
	TotalMS          uint32
}

func (p *PathFollower) fields() []coder.Field {
	return []coder.Field{
		coder.StringField("name", &p.Name),
		coder.StringField("datablock", &p.Datablock),
		coder.ScalarField("interiorResIndex", &p.InteriorResIndex),
		coder.ValueField("offset", &p.Offset),
		coder.ValueField("properties", &p.Properties),
		coder.ScalarsField("triggerId", &p.TriggerIDs),
		coder.ValuesField("wayPoint", &p.WayPoints),
		coder.ScalarField("totalMS", &p.TotalMS),
	}
}

func (p *PathFollower) ReadFrom(d coder.Decoder) error {
	return coder.ReadFields(d, p.fields()...)
}

func (p *PathFollower) WriteTo(e coder.Encoder) error {
	return coder.WriteFields(e, p.fields()...)
}

// Duration sums the way point timings. It differs from TotalMS when the
// file was edited by hand.
func (p *PathFollower) Duration() uint64 {
	var total uint64
	for _, w := range p.WayPoints {
		total += uint64(w.MSToNext)
	}
	return total
}
