package cli

import (
	"encoding/json"
	"errors"
	"strings"

	perr "hitch/internal/platform/errors"
	"hitch/internal/platform/logger"
	"hitch/internal/platform/net/http/bind"
	"hitch/internal/services/api/issues/domain"
	svc "hitch/internal/services/api/issues/service"

	"github.com/spf13/cobra"
)

type searchOptions struct {
	Keyword      string
	Language     string
	Labels       []string
	UpdatedAfter string
	Page         int
	Match        string
	JSON         bool
}

// input maps flags onto the same input the HTTP endpoint validates
func (o searchOptions) input() domain.SearchInput {
	var labels []string
	for _, l := range o.Labels {
		if l = strings.TrimSpace(l); l != "" {
			labels = append(labels, l)
		}
	}
	return domain.SearchInput{
		Q:         strings.TrimSpace(o.Keyword),
		Language:  strings.TrimSpace(o.Language),
		Labels:    labels,
		UpdatedAt: strings.TrimSpace(o.UpdatedAfter),
		Page:      max(o.Page, 0),
	}
}

func newSearchCommand(d Deps) *cobra.Command {
	var opts searchOptions

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search open issues",
		Long: `Search open GitHub issues and print one page of results.

Examples:
  # Go issues labelled "good first issue"
  hitch search --language Go --label "good first issue"

  # Rust issues about panics updated this year, page 2
  hitch search -q panic -l Rust --updated-after 2025-01-01 -p 2

  # Narrow the page to titles or repositories mentioning "parser"
  hitch search -l Python --match parser`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if d.Search == nil {
				return errors.New("search is not configured")
			}
			in := opts.input()
			if err := bind.Struct(in); err != nil {
				return publicError(err)
			}

			ctx := commandContext(cmd.Context())
			log := logger.C(ctx)
			log.Debug().Str("keyword", in.Q).Str("language", in.Language).Strs("labels", in.Labels).Msg("cli search")

			res, err := d.Search.Search(ctx, in.Filters())
			if err != nil {
				return publicError(err)
			}
			res.Issues = svc.Refine(res.Issues, opts.Match)

			if opts.JSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(res)
			}
			return renderResult(cmd.OutOrStdout(), res, renderOptions{
				Match:         opts.Match,
				Authenticated: d.Authenticated,
			})
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.Keyword, "keyword", "q", "", "Free text to search for")
	f.StringVarP(&opts.Language, "language", "l", "", "Repository language")
	f.StringArrayVar(&opts.Labels, "label", nil, "Issue label, repeat for several")
	f.StringVar(&opts.UpdatedAfter, "updated-after", "", "Only issues updated after this day (YYYY-MM-DD)")
	f.IntVarP(&opts.Page, "page", "p", 1, "Page number")
	f.StringVar(&opts.Match, "match", "", "Keep only issues whose title or repository contains this text")
	f.BoolVar(&opts.JSON, "json", false, "Print the raw result as JSON")

	return cmd
}

// publicError keeps the caller facing message and drops wrapped causes
func publicError(err error) error {
	if _, ok := perr.As(err); !ok {
		return errors.New(domain.MsgUnknown)
	}
	w := perr.WireFrom(err)
	if w.Message == "" {
		return errors.New(domain.MsgUnknown)
	}
	if w.Field != "" && !strings.Contains(w.Message, w.Field) {
		return errors.New(w.Field + ": " + w.Message)
	}
	return errors.New(w.Message)
}
