package style

import (
	"golang.org/x/net/html"
)

// initialValues are the user-agent values an unstyled element computes to,
// already in the serialized form browsers report from getComputedStyle.
var initialValues = map[string]Property{
	"display":                    "inline",
	"position":                   "static",
	"float":                      "none",
	"visibility":                 "visible",
	"width":                      "auto",
	"height":                     "auto",
	"min-width":                  "auto",
	"min-height":                 "auto",
	"max-width":                  "none",
	"max-height":                 "none",
	"margin-top":                 "0px",
	"margin-left":                "0px",
	"margin-right":               "0px",
	"margin-bottom":              "0px",
	"padding-top":                "0px",
	"padding-left":               "0px",
	"padding-right":              "0px",
	"padding-bottom":             "0px",
	"border-top-width":           "medium",
	"border-left-width":          "medium",
	"border-right-width":         "medium",
	"border-bottom-width":        "medium",
	"border-top-style":           "none",
	"border-left-style":          "none",
	"border-right-style":         "none",
	"border-bottom-style":        "none",
	"border-top-color":           "currentcolor",
	"border-left-color":          "currentcolor",
	"border-right-color":         "currentcolor",
	"border-bottom-color":        "currentcolor",
	"border-top-left-radius":     "0px",
	"border-top-right-radius":    "0px",
	"border-bottom-left-radius":  "0px",
	"border-bottom-right-radius": "0px",
	"color":                      "rgb(0, 0, 0)",
	"background-color":           "rgba(0, 0, 0, 0)",
	"font-family":                "Times New Roman",
	"font-size":                  "16px",
	"font-style":                 "normal",
	"font-weight":                "400",
	"line-height":                "normal",
	"direction":                  "ltr",
	"text-align":                 "start",
	"white-space":                "normal",
	"word-spacing":               "0px",
	"letter-spacing":             "normal",
	"word-break":                 "normal",
	"overflow-wrap":              "normal",
	"box-shadow":                 "none",
	"opacity":                    "1",
}

// GetUserAgentDefaultProperty returns the user-agent default property for a given key.
// Keys without a known initial value return NullStyle.
func GetUserAgentDefaultProperty(node *html.Node, key string) Property {
	switch key {
	case "display":
		return DisplayPropertyForHTMLNode(node)
	case "margin-top", "margin-left", "margin-right", "margin-bottom":
		if node != nil && node.Type == html.ElementNode && node.Data == "body" {
			return "8px"
		}
	}
	return initialValues[key]
}

// DisplayPropertyForHTMLNode returns the default `display` CSS property for an HTML node.
func DisplayPropertyForHTMLNode(node *html.Node) Property {
	if node == nil {
		return "none"
	}
	if node.Type == html.DocumentNode {
		return "block"
	}
	if node.Type != html.ElementNode {
		tracer().Debugf("cannot get display-property for non-element")
		return "none"
	}
	switch node.Data {
	case "head", "style", "script", "title", "meta", "link":
		return "none"
	case "html", "aside", "body", "div", "h1", "h2", "h3", "h4", "h5", "h6",
		"ol", "ul", "p", "section", "article", "header", "main", "footer",
		"nav", "form", "figure", "blockquote", "pre", "hr", "address":
		return "block"
	case "li":
		return "list-item"
	case "table":
		return "table"
	case "button", "input", "select", "textarea":
		return "inline-block"
	}
	return "inline"
}

// InitializeDefaultPropertyValues creates a property map holding the
// default values for every CSS property this package knows about.
// In real-world browsers these are the user-agent CSS values.
// Additional properties go into the extension group X.
func InitializeDefaultPropertyValues(additionalProps []KeyValue) *PropertyMap {
	pmap := NewPropertyMap()
	for key, value := range initialValues {
		pmap.Set(key, value)
	}
	for _, kv := range additionalProps {
		pmap.Set(kv.Key, kv.Value)
	}
	return pmap
}

// KnownKeys returns the keys of all properties with a user-agent initial
// value, sorted.
func KnownKeys() []string {
	kvs := InitializeDefaultPropertyValues(nil).Properties()
	keys := make([]string, len(kvs))
	for i, kv := range kvs {
		keys[i] = kv.Key
	}
	return keys
}
