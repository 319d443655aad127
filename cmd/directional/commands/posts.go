package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/kyunghoonkook/directional/consts"
	"github.com/kyunghoonkook/directional/paging"
	"github.com/kyunghoonkook/directional/types"
	"github.com/kyunghoonkook/directional/validation"
	"github.com/spf13/cobra"
)

const postsPath = "/posts"

var errNotConfirmed = errors.New("refusing to delete without --yes")

func postPath(id string) string { return postsPath + "/" + id }

func newPostsCommand(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "posts",
		Short: "Browse and edit your posts",
	}

	cmd.AddCommand(
		newPostsListCommand(opts),
		newPostsGetCommand(opts),
		newPostsCreateCommand(opts),
		newPostsUpdateCommand(opts),
		newPostsDeleteCommand(opts),
		newPostsDeleteAllCommand(opts),
	)

	return cmd
}

// listFlags list filter flags
type listFlags struct {
	search   string
	category string
	sort     string
	order    string
	limit    int
	from     string
	to       string
	next     string
	prev     string
	pages    int
}

// controller applies the flags through a paging controller so the cursor
// reset rules hold, then positions it at an explicit cursor if one was given.
func (f *listFlags) controller() *paging.Controller {
	ctrl := paging.NewController()
	ctrl.SetSearch(f.search)
	ctrl.SetCategory(strings.ToUpper(f.category))
	ctrl.SetSort(types.SortField(f.sort))
	ctrl.SetOrder(types.Order(f.order))
	ctrl.SetRange(f.from, f.to)
	p := ctrl.SetLimit(f.limit)
	if f.next == "" && f.prev == "" {
		return ctrl
	}
	p.NextCursor = f.next
	p.PrevCursor = f.prev
	return paging.NewController(p)
}

func newPostsListCommand(opts *globalOptions) *cobra.Command {
	f := &listFlags{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List posts page by page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, opts, postsPath, true, func(ctx context.Context, a *app) error {
				ctrl := f.controller()
				p := ctrl.Params()
				for i := 0; i < max(f.pages, 1); i++ {
					page, err := a.posts.List(ctx, p)
					if err != nil {
						return err
					}
					ctrl.Observe(p, page)
					if err := a.out.PostList(page); err != nil {
						return err
					}
					var ok bool
					if p, ok = ctrl.NextPage(); !ok {
						break
					}
				}
				return nil
			})
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&f.search, "search", "s", "", "search title and body")
	flags.StringVar(&f.category, "category", paging.CategoryAll, "NOTICE, QNA, FREE or ALL")
	flags.StringVar(&f.sort, "sort", string(types.SortByCreatedAt), "createdAt or title")
	flags.StringVar(&f.order, "order", string(types.Descending), "asc or desc")
	flags.IntVarP(&f.limit, "limit", "n", consts.DefaultPageLimit, "page size")
	flags.StringVar(&f.from, "from", "", "created on or after, e.g. 2025-01-31")
	flags.StringVar(&f.to, "to", "", "created on or before")
	flags.StringVar(&f.next, "next", "", "start at this next cursor")
	flags.StringVar(&f.prev, "prev", "", "start at this prev cursor")
	flags.IntVar(&f.pages, "pages", 1, "number of pages to walk forward")
	return cmd
}

func newPostsGetCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "get ID",
		Short: "Show a post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, opts, postPath(args[0]), true, func(ctx context.Context, a *app) error {
				post, err := a.posts.Get(ctx, args[0])
				if err != nil {
					return err
				}
				return a.out.Post(post)
			})
		},
	}
}

// collectTags runs every tag through the add-time guard
func collectTags(tags []string) ([]string, error) {
	set := validation.NewTagSet()
	for _, tag := range tags {
		if err := set.Add(tag); err != nil {
			return nil, err
		}
	}
	return set.Tags(), nil
}

func newPostsCreateCommand(opts *globalOptions) *cobra.Command {
	var (
		title, body, category string
		tags                  []string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Write a new post",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tagList, err := collectTags(tags)
			if err != nil {
				return err
			}
			return withApp(cmd, opts, postsPath+"/new", true, func(ctx context.Context, a *app) error {
				post, err := a.posts.Create(ctx, types.PostCreateRequest{
					Title:    strings.TrimSpace(title),
					Body:     strings.TrimSpace(body),
					Category: types.Category(strings.ToUpper(category)),
					Tags:     tagList,
				})
				if err != nil {
					return err
				}
				return a.out.Post(post)
			})
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&title, "title", "t", "", "post title")
	flags.StringVarP(&body, "body", "b", "", "post body")
	flags.StringVar(&category, "category", string(types.CategoryFree), "NOTICE, QNA or FREE")
	flags.StringArrayVar(&tags, "tag", nil, "tag, repeatable")
	return cmd
}

func newPostsUpdateCommand(opts *globalOptions) *cobra.Command {
	var (
		title, body, category string
		tags                  []string
		clearTags             bool
	)

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Edit a post, only the given fields change",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := types.PostUpdateRequest{}
			flags := cmd.Flags()
			if flags.Changed("title") {
				req.Title = types.ToPointer(strings.TrimSpace(title))
			}
			if flags.Changed("body") {
				req.Body = types.ToPointer(strings.TrimSpace(body))
			}
			if flags.Changed("category") {
				req.Category = types.ToPointer(types.Category(strings.ToUpper(category)))
			}
			switch {
			case clearTags:
				req.Tags = &[]string{}
			case flags.Changed("tag"):
				tagList, err := collectTags(tags)
				if err != nil {
					return err
				}
				req.Tags = &tagList
			}
			return withApp(cmd, opts, postPath(args[0])+"/edit", true, func(ctx context.Context, a *app) error {
				post, err := a.posts.Update(ctx, args[0], req)
				if err != nil {
					return err
				}
				return a.out.Post(post)
			})
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&title, "title", "t", "", "new title")
	flags.StringVarP(&body, "body", "b", "", "new body")
	flags.StringVar(&category, "category", "", "new category")
	flags.StringArrayVar(&tags, "tag", nil, "replacement tag, repeatable")
	flags.BoolVar(&clearTags, "clear-tags", false, "remove every tag")
	cmd.MarkFlagsMutuallyExclusive("tag", "clear-tags")
	return cmd
}

func newPostsDeleteCommand(opts *globalOptions) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return errNotConfirmed
			}
			return withApp(cmd, opts, postPath(args[0]), true, func(ctx context.Context, a *app) error {
				res, err := a.posts.Delete(ctx, args[0])
				if err != nil {
					return err
				}
				return a.out.Deleted(res)
			})
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "confirm the deletion")
	return cmd
}

func newPostsDeleteAllCommand(opts *globalOptions) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete-all",
		Short: "Delete every post of the current user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return errNotConfirmed
			}
			return withApp(cmd, opts, postsPath, true, func(ctx context.Context, a *app) error {
				res, err := a.posts.DeleteAll(ctx)
				if err != nil {
					return err
				}
				return a.out.Deleted(res)
			})
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "confirm the deletion")
	return cmd
}
