package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/heathj/elemkit/class"
	"github.com/heathj/elemkit/config"
	"github.com/heathj/elemkit/dom"
	"github.com/heathj/elemkit/html"
	"github.com/sirupsen/logrus"
)

const demo = `
tag: main
parent: body
props:
  id: app
  classes: [app]
state:
  id: true
---
tag: form
parent: "#app"
content: <input name="q"><button>Search</button>
props:
  id: search
  dataset: {endpoint: /search}
state:
  id: true
callbacks:
  default:
    handler: print
    params: {method: get}
`

func main() {
	debug := flag.Bool("debug", false, "log at debug level")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [-debug] [definitions.yaml]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if *debug {
		logrus.SetLevel(logrus.DebugLevel)
	}

	var (
		defs []*config.Definition
		err  error
	)
	if path := flag.Arg(0); path != "" {
		defs, err = config.LoadFile(path)
	} else {
		defs, err = config.Load(strings.NewReader(demo))
	}
	if err != nil {
		logrus.WithError(err).Fatal("loading definitions")
	}

	handlers := map[string]class.Func{
		"print": func(p class.Params) {
			fields := logrus.Fields{}
			for k, v := range p {
				if k != "element" {
					fields[k] = v
				}
			}
			logrus.WithFields(fields).Info("submitted")
		},
	}
	doc := dom.NewHTMLDocument()
	built, err := config.BuildAll(html.NewMemoryDocument(doc), defs, handlers)
	if err != nil {
		logrus.WithError(err).Fatal("building elements")
	}
	for _, h := range built {
		if ok, _ := h.HasCallback(class.DefaultName); !ok {
			continue
		}
		if err := h.Submit(nil); err != nil {
			logrus.WithError(err).Error("submit")
		}
	}
	fmt.Println(doc.OuterHTML())
}
