//go:generate go run ./cmd/codegen cleanup --dir ./pkg/apis
//go:generate go run ./cmd/codegen generate --dir ./pkg/apis/mediaconvert.io/v1

package main

import (
	"fmt"
	"os"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"

	v1 "github.com/harvester/mediaconvert/pkg/apis/mediaconvert.io/v1"
	"github.com/harvester/mediaconvert/pkg/config"
	"github.com/harvester/mediaconvert/pkg/document"
	"github.com/harvester/mediaconvert/pkg/record"
)

var (
	Version   = "v0.0.0-dev"
	GitCommit = "HEAD"

	ErrRecordsDiffer = errors.New("records differ")
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		logrus.Fatal(err)
	}
}

func newApp() *cli.App {
	var options config.CommonOptions

	app := cli.NewApp()
	app.Name = "mediaconvert-model"
	app.Version = fmt.Sprintf("%s (%s)", Version, GitCommit)
	app.Usage = "inspect MediaConvert model records"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:        "debug",
			EnvVar:      "DEBUG",
			Destination: &options.Debug,
		},
		cli.BoolFlag{
			Name:        "trace",
			EnvVar:      "TRACE",
			Destination: &options.Trace,
		},
		cli.StringFlag{
			Name:        "log-format",
			EnvVar:      "LOG_FORMAT",
			Value:       config.LogFormatText,
			Destination: &options.LogFormat,
			Usage:       "text or json",
		},
	}
	app.Before = func(_ *cli.Context) error {
		return options.SetupLogging(os.Stderr)
	}

	kindFlag := cli.StringFlag{
		Name:  "kind, k",
		Usage: "record kind, e.g. CreateJobRequest",
	}
	queryFlag := cli.StringFlag{
		Name:  "query, q",
		Usage: "gjson path of the part of the document to load",
	}
	app.Commands = []cli.Command{
		{
			Name:   "kinds",
			Usage:  "list record kinds",
			Action: listKinds,
		},
		{
			Name:      "enums",
			Usage:     "list enums, the values of one enum, or the enums declaring a value",
			ArgsUsage: "[NAME]",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "value",
					Usage: "only list enums declaring this wire value",
				},
			},
			Action: listEnums,
		},
		{
			Name:      "parse-enum",
			Usage:     "resolve a wire value against an enum",
			ArgsUsage: "NAME VALUE",
			Action:    parseEnum,
		},
		{
			Name:      "describe",
			Usage:     "load a YAML or JSON document into a record and print it",
			ArgsUsage: "FILE",
			Flags: []cli.Flag{
				kindFlag,
				queryFlag,
				cli.BoolFlag{
					Name:  "strict",
					Usage: "reject undeclared enum values",
				},
				cli.StringFlag{
					Name:  "output, o",
					Value: document.FormatText,
					Usage: "text, json or yaml",
				},
			},
			Action: describe,
		},
		{
			Name:      "fields",
			Usage:     "print the path and value of every present field",
			ArgsUsage: "FILE",
			Flags:     []cli.Flag{kindFlag, queryFlag},
			Action:    fields,
		},
		{
			Name:      "check-enums",
			Usage:     "report enum values the model does not declare",
			ArgsUsage: "FILE",
			Flags:     []cli.Flag{kindFlag, queryFlag},
			Action:    checkEnums,
		},
		{
			Name:      "compare",
			Usage:     "compare two documents structurally and print their hashes",
			ArgsUsage: "FILE1 FILE2",
			Flags:     []cli.Flag{kindFlag},
			Action:    compare,
		},
	}
	return app
}

func listKinds(c *cli.Context) error {
	for _, kind := range v1.RecordKinds() {
		fmt.Fprintln(c.App.Writer, kind)
	}
	return nil
}

func listEnums(c *cli.Context) error {
	value := c.String("value")
	if name := c.Args().First(); name != "" {
		if value != "" {
			return errors.New("--value cannot be combined with an enum NAME")
		}
		values, err := v1.EnumValues(name)
		if err != nil {
			return err
		}
		fmt.Fprintln(c.App.Writer, strings.Join(values, "\n"))
		return nil
	}

	for _, name := range v1.EnumNames() {
		if value != "" {
			values, err := v1.EnumValues(name)
			if err != nil {
				return err
			}
			if !mapset.NewThreadUnsafeSet(values...).Contains(value) {
				continue
			}
		}
		fmt.Fprintln(c.App.Writer, name)
	}
	return nil
}

func parseEnum(c *cli.Context) error {
	if c.NArg() != 2 {
		return errors.New("parse-enum takes NAME and VALUE")
	}
	e, err := v1.ParseEnum(c.Args().Get(0), c.Args().Get(1))
	if err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, e.String())
	return nil
}

func load(c *cli.Context, path string) (record.Record, error) {
	kind := c.String("kind")
	if kind == "" {
		return nil, errors.New("--kind is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}
	return document.Load(kind, data, document.Options{
		Query:       c.String("query"),
		StrictEnums: c.Bool("strict"),
	})
}

func loadArg(c *cli.Context) (record.Record, error) {
	if c.NArg() != 1 {
		return nil, errors.Errorf("%s takes exactly one FILE", c.Command.Name)
	}
	return load(c, c.Args().First())
}

func describe(c *cli.Context) error {
	r, err := loadArg(c)
	if err != nil {
		return err
	}
	out, err := document.Render(r, c.String("output"))
	if err != nil {
		return err
	}
	_, err = c.App.Writer.Write(out)
	return err
}

func fields(c *cli.Context) error {
	r, err := loadArg(c)
	if err != nil {
		return err
	}
	return record.Walk(r, func(f record.Field) error {
		_, err := fmt.Fprintf(c.App.Writer, "%s = %s\n", f.Path, record.Prettify(f.Value))
		return err
	})
}

func checkEnums(c *cli.Context) error {
	r, err := loadArg(c)
	if err != nil {
		return err
	}
	if err := record.CheckEnums(r); err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, "all enum values are declared")
	return nil
}

func compare(c *cli.Context) error {
	if c.NArg() != 2 {
		return errors.New("compare takes FILE1 and FILE2")
	}
	a, err := load(c, c.Args().Get(0))
	if err != nil {
		return err
	}
	b, err := load(c, c.Args().Get(1))
	if err != nil {
		return err
	}
	equal := record.Equal(a, b)
	fmt.Fprintf(c.App.Writer, "equal: %t\nhash %s: %d\nhash %s: %d\n", equal, c.Args().Get(0), a.Hash(), c.Args().Get(1), b.Hash())
	if !equal {
		return ErrRecordsDiffer
	}
	return nil
}
