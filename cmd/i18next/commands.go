package main

import (
	"fmt"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/i18next/internal/server"
	"github.com/dmitrymomot/i18next/pkg/i18next"
)

type translation struct {
	Value    any    `json:"value" yaml:"value"`
	Key      string `json:"key" yaml:"key"`
	Language string `json:"language" yaml:"language"`
	Kind     string `json:"kind" yaml:"kind"`
}

func newGetCmd(a *app) *cobra.Command {
	var (
		vars         []string
		sprintf      []string
		lng          string
		ctxName      string
		count        string
		defaultValue string
		postProcess  string
		objectTrees  bool
	)

	cmd := &cobra.Command{
		Use:   "get KEY",
		Short: "Translate a key",
		Example: `  i18next get common.welcome --var name=Ada
  i18next get cart.item --count 3 -l de
  i18next get price --post-process sprintf --sprintf tea --sprintf 3`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := parseVars(vars)
			if err != nil {
				return err
			}
			setIf(m, i18next.OptLanguage, lng)
			setIf(m, i18next.OptContext, ctxName)
			setIf(m, i18next.OptCount, count)
			setIf(m, i18next.OptDefaultValue, defaultValue)
			setIf(m, i18next.OptPostProcess, postProcess)
			if len(sprintf) > 0 {
				m[i18next.OptSprintf] = sprintf
			}
			if objectTrees {
				m[i18next.OptReturnObjectTrees] = true
			}

			key := args[0]
			v := a.i18n.GetTranslation(key, m)
			language := a.i18n.Language()
			if lng != "" {
				language = lng
			}

			out := translation{Key: key, Language: language, Kind: v.Kind().String(), Value: v.String()}
			text := v.String()
			switch v.Kind() {
			case i18next.KindList:
				out.Value = v.List()
			case i18next.KindTree:
				out.Value = v.Tree()
				text = fmt.Sprint(v.Tree())
			}
			return render(cmd.OutOrStdout(), a.output, out, text)
		},
	}

	f := cmd.Flags()
	f.StringArrayVar(&vars, "var", nil, "interpolation variable name=value (repeatable)")
	f.StringArrayVar(&sprintf, "sprintf", nil, "sprintf argument (repeatable)")
	f.StringVar(&lng, "lng", "", "look up only this language, without fallback")
	f.StringVar(&ctxName, "context", "", "context variant")
	f.StringVar(&count, "count", "", "plural count")
	f.StringVar(&defaultValue, "default", "", "value returned when the key is missing")
	f.StringVar(&postProcess, "post-process", "", "post-processor name, e.g. sprintf")
	f.BoolVar(&objectTrees, "tree", false, "return lists and subtrees as structures")
	return cmd
}

func newExistsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "exists KEY...",
		Short: "Report whether keys resolve in the current language",
		Long:  "Checks the current language only, without fallback. Exits non-zero when a key is missing.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result := make(map[string]bool, len(args))
			var lines []string
			missing := 0
			for _, key := range args {
				ok := a.i18n.Exists(key)
				result[key] = ok
				lines = append(lines, fmt.Sprintf("%s\t%t", key, ok))
				if !ok {
					missing++
				}
			}
			if err := render(cmd.OutOrStdout(), a.output, result, strings.Join(lines, "\n")); err != nil {
				return err
			}
			if missing > 0 {
				return fmt.Errorf("%d of %d keys missing in %q", missing, len(args), a.i18n.Language())
			}
			return nil
		},
	}
}

func newMissingCmd(a *app) *cobra.Command {
	var languages []string

	cmd := &cobra.Command{
		Use:   "missing KEY...",
		Short: "Translate keys and print the missing-translation log",
		Long: `Translates every key in each requested language (the current language by
default) and prints the records left in the missing-translation log.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(languages) == 0 {
				languages = []string{a.i18n.Language()}
			}
			for _, lang := range languages {
				tr := a.i18n.Translator(lang, "")
				for _, key := range args {
					tr.T(key)
				}
			}

			records := a.i18n.ResetMissing()
			if records == nil {
				records = []i18next.MissingTranslation{}
			}
			lines := make([]string, 0, len(records))
			for _, r := range records {
				lines = append(lines, r.Language+"\t"+r.Key)
			}
			return render(cmd.OutOrStdout(), a.output, records, strings.Join(lines, "\n"))
		},
	}

	cmd.Flags().StringSliceVar(&languages, "languages", nil, "languages to check (comma separated)")
	return cmd
}

func newServeCmd(a *app) *cobra.Command {
	var (
		addr      string
		namespace string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve translations over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			if addr == "" {
				addr = a.cfg.HTTP.Addr
			}
			if namespace == "" {
				namespace = a.cfg.Namespace
			}

			return server.New(a.i18n,
				server.WithAddr(addr),
				server.WithNamespace(namespace),
				server.WithLogger(a.log),
				server.WithReadHeaderTimeout(a.cfg.HTTP.ReadHeaderTimeout),
				server.WithShutdownTimeout(a.cfg.HTTP.ShutdownTimeout),
			).Run(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, :8080)")
	cmd.Flags().StringVar(&namespace, "namespace", "", "namespace prefixed to every requested key")
	return cmd
}

// parseVars turns name=value pairs into variables.
func parseVars(pairs []string) (i18next.M, error) {
	m := make(i18next.M, len(pairs))
	for _, p := range pairs {
		name, value, ok := strings.Cut(p, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid variable %q, want name=value", p)
		}
		m[name] = value
	}
	return m, nil
}

func setIf(m i18next.M, key, value string) {
	if value != "" {
		m[key] = value
	}
}
