package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/elimuhub/elimu-go/pkg/elimu"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// resource binds a collection name to the client service handling it
type resource struct {
	list    func(ctx context.Context, c *elimu.Client, params *elimu.ListParams) (interface{}, error)
	get     func(ctx context.Context, c *elimu.Client, id string) (interface{}, error)
	deleter func(c *elimu.Client) elimu.Deleter
}

var resources = map[string]resource{
	elimu.ResourceBooks: {
		list: func(ctx context.Context, c *elimu.Client, p *elimu.ListParams) (interface{}, error) {
			return c.Books.List(ctx, p)
		},
		get: func(ctx context.Context, c *elimu.Client, id string) (interface{}, error) {
			return c.Books.Get(ctx, id)
		},
		deleter: func(c *elimu.Client) elimu.Deleter { return c.Books.Delete },
	},
	elimu.ResourceAuthors: {
		list: func(ctx context.Context, c *elimu.Client, p *elimu.ListParams) (interface{}, error) {
			return c.Authors.List(ctx, p)
		},
		get: func(ctx context.Context, c *elimu.Client, id string) (interface{}, error) {
			return c.Authors.Get(ctx, id)
		},
		deleter: func(c *elimu.Client) elimu.Deleter { return c.Authors.Delete },
	},
	elimu.ResourceJobs: {
		list: func(ctx context.Context, c *elimu.Client, p *elimu.ListParams) (interface{}, error) {
			return c.Jobs.List(ctx, p)
		},
		get: func(ctx context.Context, c *elimu.Client, id string) (interface{}, error) {
			return c.Jobs.Get(ctx, id)
		},
		deleter: func(c *elimu.Client) elimu.Deleter { return c.Jobs.Delete },
	},
	elimu.ResourceScholarships: {
		list: func(ctx context.Context, c *elimu.Client, p *elimu.ListParams) (interface{}, error) {
			return c.Scholarships.List(ctx, p)
		},
		get: func(ctx context.Context, c *elimu.Client, id string) (interface{}, error) {
			return c.Scholarships.Get(ctx, id)
		},
		deleter: func(c *elimu.Client) elimu.Deleter { return c.Scholarships.Delete },
	},
	elimu.ResourceArticles: {
		list: func(ctx context.Context, c *elimu.Client, p *elimu.ListParams) (interface{}, error) {
			return c.Articles.List(ctx, p)
		},
		get: func(ctx context.Context, c *elimu.Client, id string) (interface{}, error) {
			return c.Articles.Get(ctx, id)
		},
		deleter: func(c *elimu.Client) elimu.Deleter { return c.Articles.Delete },
	},
	elimu.ResourceVideos: {
		list: func(ctx context.Context, c *elimu.Client, p *elimu.ListParams) (interface{}, error) {
			return c.Videos.List(ctx, p)
		},
		get: func(ctx context.Context, c *elimu.Client, id string) (interface{}, error) {
			return c.Videos.Get(ctx, id)
		},
		deleter: func(c *elimu.Client) elimu.Deleter { return c.Videos.Delete },
	},
	elimu.ResourceUsers: {
		list: func(ctx context.Context, c *elimu.Client, p *elimu.ListParams) (interface{}, error) {
			return c.Users.List(ctx, p)
		},
		get: func(ctx context.Context, c *elimu.Client, id string) (interface{}, error) {
			return c.Users.Get(ctx, id)
		},
		deleter: func(c *elimu.Client) elimu.Deleter { return c.Users.Delete },
	},
	elimu.ResourceCompanies: {
		list: func(ctx context.Context, c *elimu.Client, p *elimu.ListParams) (interface{}, error) {
			return c.Companies.List(ctx, p)
		},
		get: func(ctx context.Context, c *elimu.Client, id string) (interface{}, error) {
			return c.Companies.Get(ctx, id)
		},
		deleter: func(c *elimu.Client) elimu.Deleter { return c.Companies.Delete },
	},
	elimu.ResourcePlans: {
		list: func(ctx context.Context, c *elimu.Client, p *elimu.ListParams) (interface{}, error) {
			return c.Plans.List(ctx, p)
		},
		get: func(ctx context.Context, c *elimu.Client, id string) (interface{}, error) {
			return c.Plans.Get(ctx, id)
		},
		deleter: func(c *elimu.Client) elimu.Deleter { return c.Plans.Delete },
	},
	elimu.ResourceSubscriptions: {
		list: func(ctx context.Context, c *elimu.Client, p *elimu.ListParams) (interface{}, error) {
			return c.Subscriptions.List(ctx, p)
		},
		get: func(ctx context.Context, c *elimu.Client, id string) (interface{}, error) {
			return c.Subscriptions.Get(ctx, id)
		},
		deleter: func(c *elimu.Client) elimu.Deleter { return c.Subscriptions.Delete },
	},
}

func resourceFor(name string) (resource, error) {
	r, ok := resources[name]
	if !ok {
		names := make([]string, 0, len(resources))
		for n := range resources {
			names = append(names, n)
		}
		return resource{}, errors.Errorf("unknown resource %q (one of: %s)", name, strings.Join(names, ", "))
	}
	return r, nil
}

func printJSON(v interface{}) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to render output")
	}
	fmt.Println(string(out))
	return nil
}

var (
	listSearch string
	listSortBy string
	listDesc   bool
	listPage   int
	listLimit  int
	listFilter []string
)

var listCmd = &cobra.Command{
	Use:   "list <resource>",
	Short: "List a resource collection",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := resourceFor(args[0])
		if err != nil {
			return err
		}

		client, err := newClient()
		if err != nil {
			return err
		}
		defer client.Close()

		params := &elimu.ListParams{
			Search: listSearch,
			SortBy: listSortBy,
			Page:   listPage,
			Limit:  listLimit,
		}
		if listDesc {
			params.SortOrder = elimu.SortDesc
		}
		for _, f := range listFilter {
			key, value, ok := strings.Cut(f, "=")
			if !ok {
				return errors.Errorf("invalid filter %q, expected key=value", f)
			}
			if params.Filters == nil {
				params.Filters = make(map[string]string)
			}
			params.Filters[key] = value
		}

		result, err := r.list(cmd.Context(), client, params)
		if err != nil {
			return err
		}
		return printJSON(result)
	},
}

var getCmd = &cobra.Command{
	Use:   "get <resource> <id>",
	Short: "Fetch a single record",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := resourceFor(args[0])
		if err != nil {
			return err
		}

		client, err := newClient()
		if err != nil {
			return err
		}
		defer client.Close()

		result, err := r.get(cmd.Context(), client, args[1])
		if err != nil {
			return err
		}
		return printJSON(result)
	},
}

var deleteYes bool

var deleteCmd = &cobra.Command{
	Use:   "delete <resource> <id>",
	Short: "Delete a record after confirmation",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := resourceFor(args[0])
		if err != nil {
			return err
		}

		client, err := newClient()
		if err != nil {
			return err
		}
		defer client.Close()

		confirm := elimu.NewDeleteConfirmation(r.deleter(client))
		if err := confirm.Request(args[1]); err != nil {
			return err
		}

		if !deleteYes {
			fmt.Printf("Delete %s/%s? [y/N]: ", args[0], args[1])
			reader := bufio.NewReader(os.Stdin)
			line, err := reader.ReadString('\n')
			if err != nil {
				return errors.Wrap(err, "failed to read answer")
			}
			answer := strings.ToLower(strings.TrimSpace(line))
			if answer != "y" && answer != "yes" {
				confirm.Cancel()
				fmt.Println("Canceled")
				return nil
			}
		}

		return confirm.Confirm(cmd.Context())
	},
}

func init() {
	listCmd.Flags().StringVar(&listSearch, "search", "", "search term")
	listCmd.Flags().StringVar(&listSortBy, "sort-by", "", "sort field")
	listCmd.Flags().BoolVar(&listDesc, "desc", false, "sort descending")
	listCmd.Flags().IntVar(&listPage, "page", 0, "page number")
	listCmd.Flags().IntVar(&listLimit, "limit", 0, "page size")
	listCmd.Flags().StringArrayVar(&listFilter, "filter", nil, "field filter as key=value, repeatable")

	deleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "skip the confirmation prompt")

	rootCmd.AddCommand(listCmd, getCmd, deleteCmd)
}
