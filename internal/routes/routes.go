// Package routes builds the application's absolute navigation paths from a
// declarative route tree, once, at package load.
package routes

import (
	"fmt"
	"strings"
)

type def struct {
	segment  string
	children map[string]def
}

// tree mirrors the client routing table: nested segments are concatenated
// into absolute paths, ":param" placeholders are filled by WithParams.
var tree = map[string]def{
	"home":     {segment: ""},
	"login":    {segment: "login"},
	"register": {segment: "register"},
	"profile":  {segment: "profile"},
	"dashboard": {segment: "dashboard", children: map[string]def{
		"organization": {segment: "organization"},
		"departments": {segment: "departments", children: map[string]def{
			"create": {segment: "create"},
			"edit":   {segment: "edit/:id"},
		}},
		"users": {segment: "users", children: map[string]def{
			"create": {segment: "create"},
			"edit":   {segment: "edit/:id"},
		}},
		"roles": {segment: "roles"},
		"chats": {segment: "chats", children: map[string]def{
			"chat": {segment: ":chatId"},
		}},
		"kanban": {segment: "kanban", children: map[string]def{
			"board": {segment: "board/:boardId"},
		}},
		"whatsapp": {segment: "whatsapp", children: map[string]def{
			"conversation": {segment: "conversation/:conversationId"},
		}},
	}},
}

var paths = build("", tree)

func build(base string, defs map[string]def) map[string]string {
	out := map[string]string{}
	for name, d := range defs {
		path := base
		if d.segment != "" {
			path = base + "/" + d.segment
		}
		if path == "" {
			path = "/"
		}
		out[name] = path
		for childName, childPath := range build(path, d.children) {
			out[name+"."+childName] = childPath
		}
	}
	return out
}

// Path resolves a dotted route name ("dashboard.departments.edit") to its
// absolute path. Unknown names are a programming error and panic.
func Path(name string) string {
	path, ok := paths[name]
	if !ok {
		panic(fmt.Sprintf("routes: unknown route %q", name))
	}
	return path
}

// WithParams substitutes ":param" placeholders with literal values.
// Placeholders without a matching entry are left as-is.
func WithParams(path string, params map[string]string) string {
	segments := strings.Split(path, "/")
	for i, segment := range segments {
		if !strings.HasPrefix(segment, ":") {
			continue
		}
		if value, ok := params[segment[1:]]; ok {
			segments[i] = value
		}
	}
	return strings.Join(segments, "/")
}
