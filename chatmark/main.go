//
// Chatmark Markdown Renderer, based on Blackfriday
// Available at http://github.com/ichingweb/chatmark
//
// Copyright © 2011 Russ Ross <russ@russross.com>.
// Distributed under the Simplified BSD License.
// See README.md for details.
//

// Command line front-end for chatmark.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/ichingweb/chatmark"
	"github.com/npillmayer/schuko/tracing"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// tracer traces with key 'chatmark'.
func tracer() tracing.Trace {
	return tracing.Select("chatmark")
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var cfgPath string
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "chatmark [inputfile]",
		Short: "Render untrusted markdown to safe HTML",
		Long: `Renders chat-style markdown (headings, paragraphs, emphasis, code,
quotes, lists, links and strikethrough) to HTML that is safe to embed.

Reads from inputfile, or from stdin if none is given, and writes to
stdout unless --output names a file.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadConfig(v, cfgPath)
			if err != nil {
				return err
			}
			return run(cmd, c, args)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&cfgPath, "config", "", "path to config file")
	flags.StringP("output", "o", "", "write HTML to this file instead of stdout")
	flags.Bool("xhtml", true, "use XHTML-style line breaks")
	flags.Bool("target-blank", true, "open links in a new tab")
	flags.Bool("heading-ids", false, "add an id attribute to every heading")
	flags.Bool("sanitize", false, "run the output through an HTML sanitizer")
	flags.Bool("page", false, "generate a standalone HTML page")
	flags.String("title", "", "page title (implies --page)")
	flags.String("css", "", "link to a CSS stylesheet (implies --page)")
	flags.String("theme", "none", "class theme: none, tailwind")
	flags.String("trace", "error", "trace level: error, info, debug")

	if err := bindFlags(v, flags, flagKeys); err != nil {
		panic(err)
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the chatmark version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "chatmark v"+chatmark.VERSION)
		},
	})
	return cmd
}

// flagKeys maps config keys to the flags that set them.
var flagKeys = map[string]string{
	"output":       "output",
	"xhtml":        "xhtml",
	"target_blank": "target-blank",
	"heading_ids":  "heading-ids",
	"sanitize":     "sanitize",
	"page":         "page",
	"title":        "title",
	"css":          "css",
	"theme":        "theme",
	"trace":        "trace",
}

// bindFlags binds every config key to its flag. An unknown flag name is an
// error.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet, keys map[string]string) error {
	for key, name := range keys {
		if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
			return fmt.Errorf("binding %s to --%s: %w", key, name, err)
		}
	}
	return nil
}

func run(cmd *cobra.Command, c Config, args []string) error {
	if err := setTraceLevel(c.Trace); err != nil {
		return err
	}

	renderer, err := c.renderer()
	if err != nil {
		return err
	}
	tracer().Infof("theme=%s sanitize=%v page=%v", c.Theme, c.Sanitize, c.Page)

	var input []byte
	if len(args) == 1 {
		if input, err = os.ReadFile(args[0]); err != nil {
			return fmt.Errorf("reading %s: %w", args[0], err)
		}
	} else if input, err = io.ReadAll(cmd.InOrStdin()); err != nil {
		return fmt.Errorf("reading stdin: %w", err)
	}

	output := renderer.Render(string(input))

	if c.Output == "" {
		_, err = io.WriteString(cmd.OutOrStdout(), output)
		return err
	}
	if err = os.WriteFile(c.Output, []byte(output), 0o644); err != nil {
		tracer().Errorf("cannot write %s", c.Output)
		return fmt.Errorf("writing %s: %w", c.Output, err)
	}
	return nil
}
