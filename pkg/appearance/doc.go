// Package appearance keeps the style and resource declarations of an AriaML
// document, grouped for deferred rendering.
//
// Each declaration is an ordered attribute list (src, type, theme, media,
// preload...) plus optional inline content. Content is either text or a
// structured value that is JSON encoded at render time. Declarations that
// reference an external resource through src never emit inline content.
//
//	reg := appearance.New()
//	reg.Add(attr.Attrs{{Key: "src", Value: "/css/base.css"}, {Key: "preload", Value: true}}, "persistant")
//	reg.Add(attr.Attrs{{Key: "type", Value: "text/css"}, {Key: "content", Value: "main{margin:0}"}}, appearance.Ungrouped)
//
//	reg.PreloadLinks()                     // one <link rel="preload"> per distinct src
//	reg.Render([]string{"persistant"}, 1)  // <style> tags for the group
package appearance
