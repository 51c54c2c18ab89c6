package clicmds

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/davecgh/go-spew/spew"
	"github.com/emicklei/dot"
	"github.com/pkg/errors"
	"gitlab.com/urlp/urlp"
)

var spewConfig = spew.ConfigState{Indent: "    ", DisableMethods: true, DisablePointerAddresses: true, DisableCapacities: true, SortKeys: true}

// writeResult to w in the requested format (debug, json or dot)
func writeResult(w io.Writer, format string, r *urlp.Result) error {
	switch format {
	case "", "debug":
		if r.Error != nil {
			_, err := fmt.Fprintf(w, "Err(%s)\n", r.Error.Message)
			return err
		}
		_, err := fmt.Fprintf(w, "Ok((%q, %s))\n", r.Remainder, spewConfig.Sdump(r.URI))
		return err
	case "json":
		data, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return errors.Wrap(err, "marshalling result")
		}
		_, err = fmt.Fprintf(w, "%s\n", data)
		return err
	case "dot":
		_, err := io.WriteString(w, resultDOT(r).String())
		return err
	}
	return errors.Wrap(urlp.ErrUnknownFormat, format)
}

// resultDOT graphs the components of a parsed URI
func resultDOT(r *urlp.Result) *dot.Graph {
	g := dot.NewGraph(dot.Directed)
	g.Attr("rankdir", "LR")

	root := g.Node("input")
	root.Attr("label", r.Input)
	root.Attr("shape", "box")

	if r.Error != nil {
		e := g.Node("error")
		e.Attr("label", r.Error.Message)
		e.Attr("color", "red")
		g.Edge(root, e, "failed")
		return g
	}

	u := r.URI
	leaf := func(id, edge, label string) dot.Node {
		n := g.Node(id)
		n.Attr("label", label)
		g.Edge(root, n, edge)
		return n
	}

	leaf("scheme", "scheme", u.Scheme.String())
	if u.Authority != nil {
		auth := leaf("authority", "authority", u.Authority.Username)
		if u.Authority.Password != nil {
			pass := g.Node("password")
			pass.Attr("label", *u.Authority.Password)
			g.Edge(auth, pass, "password")
		}
	}
	res := leaf("resource", "resource", u.Resource.String())
	if r.Domain != "" {
		d := g.Node("domain")
		d.Attr("label", r.Domain)
		g.Edge(res, d, "registrable domain")
	}
	if u.Port != nil {
		leaf("port", "port", strconv.Itoa(int(*u.Port)))
	}
	if u.Path != nil {
		prev := leaf("path", "path", "/")
		for i, seg := range u.Path {
			n := g.Node("path" + strconv.Itoa(i))
			n.Attr("label", seg)
			g.Edge(prev, n)
			prev = n
		}
	}
	if u.Query != nil {
		q := leaf("query", "query", "?")
		for i, p := range u.Query {
			n := g.Node("query" + strconv.Itoa(i))
			n.Attr("label", p.Key+"="+p.Value)
			g.Edge(q, n, strconv.Itoa(i))
		}
	}
	if u.Fragment != nil {
		leaf("fragment", "fragment", *u.Fragment)
	}
	if r.Remainder != "" {
		leaf("remainder", "remainder", r.Remainder)
	}
	return g
}
