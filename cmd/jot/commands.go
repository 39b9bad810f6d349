package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"jot/internal/notes"
)

func newAddCmd(a *app) *cobra.Command {
	var category string
	cmd := &cobra.Command{
		Use:   "add <title> <content>",
		Short: "Add a note",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := notes.ParseCategory(category)
			if err != nil {
				return err
			}
			if err := a.open(false, cmd.ErrOrStderr()); err != nil {
				return err
			}
			defer a.close()

			n, err := a.store.Add(args[0], args[1], cat)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %d (%s): %s\n", n.ID, n.Category, n.Title)
			return nil
		},
	}
	cmd.Flags().StringVarP(&category, "category", "c", string(notes.Personal), "personal, work or shopping")
	return cmd
}

func newListCmd(a *app) *cobra.Command {
	var filter, format string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List notes, optionally by category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := notes.ParseFilter(filter)
			if err != nil {
				return err
			}
			if err := a.open(false, cmd.ErrOrStderr()); err != nil {
				return err
			}
			defer a.close()

			return writeNotes(cmd.OutOrStdout(), a.store.Visible(f), format)
		},
	}
	cmd.Flags().StringVarP(&filter, "filter", "f", string(notes.All), "all, personal, work or shopping")
	cmd.Flags().StringVar(&format, "format", "table", "table, json or yaml")
	return cmd
}

func newEditCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "edit <id> <title> <content>",
		Short: "Replace a note's title and content",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := a.open(false, cmd.ErrOrStderr()); err != nil {
				return err
			}
			defer a.close()

			if _, ok := a.store.Get(id); !ok {
				a.logger.Debug("edit: no such note", "id", id)
			}
			return a.store.Edit(id, args[1], args[2])
		},
	}
}

func newRmCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"delete"},
		Short:   "Delete a note permanently",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := a.open(false, cmd.ErrOrStderr()); err != nil {
				return err
			}
			defer a.close()

			if _, ok := a.store.Get(id); !ok {
				a.logger.Debug("rm: no such note", "id", id)
			}
			return a.store.Delete(id)
		},
	}
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}

func writeNotes(w io.Writer, c notes.Collection, format string) error {
	switch strings.ToLower(format) {
	case "json":
		data, err := json.MarshalIndent(c, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case "yaml":
		data, err := yaml.Marshal([]notes.Note(c))
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	case "table", "":
		return writeTable(w, c)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

const (
	titleCol   = 24
	contentCol = 40
)

func writeTable(w io.Writer, c notes.Collection) error {
	if len(c) == 0 {
		_, err := fmt.Fprintln(w, "no notes")
		return err
	}
	row := func(id, cat, title, content string) string {
		return fmt.Sprintf("%-14s %-9s %s %s",
			id, cat,
			runewidth.FillRight(runewidth.Truncate(title, titleCol, "…"), titleCol),
			runewidth.Truncate(oneLine(content), contentCol, "…"))
	}
	fmt.Fprintln(w, row("ID", "CATEGORY", "TITLE", "CONTENT"))
	for _, n := range c {
		if _, err := fmt.Fprintln(w, row(strconv.FormatInt(n.ID, 10), string(n.Category), n.Title, n.Content)); err != nil {
			return err
		}
	}
	return nil
}

func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
