package main

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/validaten/pkg/i18n"
	"github.com/dmitrymomot/validaten/pkg/logger"
	"github.com/dmitrymomot/validaten/pkg/validator"
)

// ruleBuilders maps the KIND of a KIND=VALUE argument to its validation rule.
var ruleBuilders = map[string]func(field, value string) validator.Rule{
	"card":     validator.ValidCreditCard,
	"crypto":   validator.ValidCryptoAddress,
	"eth":      validator.ValidEthereumChecksum,
	"hash":     validator.ValidHash,
	"ip":       validator.ValidIP,
	"ipv4":     validator.ValidIPv4,
	"ipv6":     validator.ValidIPv6,
	"cidr4":    validator.ValidIPv4CIDR,
	"cidr6":    validator.ValidIPv6CIDR,
	"loopback": validator.LoopbackIP,
	"mac":      validator.ValidMAC,
}

func ruleKinds() []string {
	kinds := make([]string, 0, len(ruleBuilders))
	for k := range ruleBuilders {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}

func newValidateCmd(a *app) *cobra.Command {
	var lang string
	cmd := &cobra.Command{
		Use:   "validate KIND=VALUE...",
		Short: "Apply validation rules and print localised messages for failures",
		Long:  "Apply validation rules and print localised messages for failures.\n\nKinds: " + strings.Join(ruleKinds(), ", "),
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rules := make([]validator.Rule, 0, len(args))
			for i, arg := range args {
				kind, value, ok := strings.Cut(arg, "=")
				build, known := ruleBuilders[kind]
				if !ok || !known {
					return fmt.Errorf("%w: %q (want KIND=VALUE, kinds: %s)", ErrInvalidRule, arg, strings.Join(ruleKinds(), ", "))
				}
				rules = append(rules, build(fmt.Sprintf("%s#%d", kind, i+1), value))
			}

			tr, err := i18n.Default(cmd.Context(), i18n.WithLogger(a.log))
			if err != nil {
				return err
			}
			preference := lang
			if preference == "" {
				preference = a.cfg.Lang
			}
			msgLang := tr.Match(preference)

			verrs := validator.ExtractValidationErrors(validator.Apply(rules...))
			messages := verrs.Translate(func(key string, args ...string) string {
				return tr.T(msgLang, key, args...)
			})
			a.log.DebugContext(cmd.Context(), "validated",
				logger.Valid(verrs.IsEmpty()),
				slog.Int("rules", len(rules)),
				slog.Int("failed", len(verrs)),
			)

			if err := a.writeMessages(cmd.OutOrStdout(), verrs.Fields(), messages); err != nil {
				return err
			}
			if !verrs.IsEmpty() {
				return fmt.Errorf("%w: %d of %d", ErrInvalidInput, len(verrs), len(rules))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&lang, "lang", "", "message language, e.g. de or de_DE.UTF-8 (overrides VALIDATEN_LANG)")
	return cmd
}
