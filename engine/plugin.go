package engine

import "github.com/chartcanvas/chartcanvas/surface"

// Plugin hooks into the chart paint lifecycle. BeforeDraw runs as soon as
// the engine attaches to a surface, ahead of any chart drawing; AfterDraw
// runs once the chart has finished painting, before the output is written.
// A non-nil error from either hook aborts the render.
type Plugin interface {
	// Name identifies the plugin. Registering a plugin with an existing
	// name replaces the previous registration.
	Name() string

	BeforeDraw(dc surface.DrawContext) error
	AfterDraw(dc surface.DrawContext) error
}

// PluginFuncs adapts plain functions to the Plugin interface. Nil fields
// are skipped.
type PluginFuncs struct {
	PluginName string
	Before     func(dc surface.DrawContext) error
	After      func(dc surface.DrawContext) error
}

// Name implements Plugin.
func (p PluginFuncs) Name() string { return p.PluginName }

// BeforeDraw implements Plugin.
func (p PluginFuncs) BeforeDraw(dc surface.DrawContext) error {
	if p.Before == nil {
		return nil
	}
	return p.Before(dc)
}

// AfterDraw implements Plugin.
func (p PluginFuncs) AfterDraw(dc surface.DrawContext) error {
	if p.After == nil {
		return nil
	}
	return p.After(dc)
}
