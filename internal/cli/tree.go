package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/ctsq/internal/tree"
)

// TreeOptions holds flags for the tree command.
type TreeOptions struct {
	*RootOptions
	Listing string
}

// TreeNode is the JSON form of a tree node.
type TreeNode struct {
	Query    string     `json:"query"`
	Children []TreeNode `json:"children,omitempty"`
}

// NewTreeCommand creates the tree command.
func NewTreeCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &TreeOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "tree [queries...]",
		Short: "Print queries as a containment tree",
		Long: `Arrange queries into a tree where every query sits beneath the queries
that strictly contain it. Queries come from the arguments and, with
--listing, from the cases of a listing file.

Example:
  ctsq tree 'webgpu:*' 'webgpu:api,*' --listing webgpu.yaml`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTree(opts, args, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Listing, "listing", "", "listing file (.yaml, .json or .cue)")

	return cmd
}

func runTree(opts *TreeOptions, args []string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	qs, err := gatherQueries(args, opts.Listing)
	if err != nil {
		return commandError(formatter, "", "cannot build tree", err)
	}

	t := tree.New(qs...)
	formatter.VerboseLog("%d queries, %d distinct", len(qs), t.Len())

	if formatter.Format == "json" {
		return formatter.Success(treeNodes(t.Root.Children))
	}

	fmt.Fprint(formatter.Writer, t.String())
	return nil
}

func treeNodes(nodes []*tree.Node) []TreeNode {
	out := make([]TreeNode, len(nodes))
	for i, n := range nodes {
		out[i] = TreeNode{Query: n.Query.String(), Children: treeNodes(n.Children)}
	}
	return out
}
