package cli

import (
	"dnsimple-client/dnsimple"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type listOptions struct {
	dnsimple.ListOptions

	all bool
}

func (lo *listOptions) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&lo.Page, "page", 0, "Page to fetch.")
	cmd.Flags().IntVar(&lo.PerPage, "per-page", 0, "Items per page.")
	cmd.Flags().StringVar(&lo.Sort, "sort", "", "Sort order, e.g. \"id:desc\".")
	cmd.Flags().BoolVar(&lo.all, "all", false, "Fetch all pages starting at --page.")
}

// paginate calls list for the requested page and, with --all, every page after it.
func paginate[T any](lo listOptions, list func(dnsimple.ListOptions) (*dnsimple.Response[[]T], error)) ([]T, error) {
	items := []T{}
	opts := lo.ListOptions

	for {
		resp, err := list(opts)
		if err != nil {
			return nil, err
		}

		logRateLimit(resp.ResponseMeta)
		items = append(items, resp.Data...)

		p := resp.Pagination
		if !lo.all || p == nil {
			return items, nil
		}

		// Never go back, even if the server repeats current_page.
		page := max(opts.Page, p.CurrentPage)
		if page >= p.TotalPages {
			return items, nil
		}

		log.WithFields(log.Fields{"page": page, "pages": p.TotalPages}).Debug("fetching next page")
		opts.Page = page + 1
	}
}
