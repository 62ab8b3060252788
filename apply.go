package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/llehouerou/resetconfig/internal/app"
	"github.com/llehouerou/resetconfig/internal/errmsg"
	"github.com/llehouerou/resetconfig/internal/reset"
)

// errNothingSelected is returned when apply is given no category.
var errNothingSelected = errors.New("nothing selected: pass a category flag, a category name or --all")

func newApplyCmd(root *rootOptions) *cobra.Command {
	var sel reset.Selection
	cmd := &cobra.Command{
		Use:   "apply [category...]",
		Short: "Reset categories without opening the dialog",
		Long: `Resets the given categories and exits. Categories can be passed as flags
or by name: directories, interface, keyboard, playback, effects, all.`,
		Example: "  resetconfig apply --keyboard --full-keys\n  resetconfig apply playback effects",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := selectionFromArgs(&sel, args); err != nil {
				return err
			}
			if sel.Empty() {
				return errNothingSelected
			}

			s, err := openSession(root)
			if err != nil {
				return err
			}
			defer s.Close()

			if !cmd.Flags().Changed("full-keys") {
				sel.UseFullKeys = s.cfg.UseFullKeys()
			}

			res := s.coordinator(app.NewHost(s.store, s.registry)).Apply(sel)
			if len(res.Applied) > 0 {
				fmt.Fprintln(cmd.OutOrStdout(), summary(res))
			}
			if !res.OK() {
				return errors.New(errmsg.Format(errmsg.OpReset, res.Err))
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.BoolVar(&sel.Directories, "directories", false, "reset directories")
	f.BoolVar(&sel.Interface, "interface", false, "reset interface and theme")
	f.BoolVar(&sel.Keyboard, "keyboard", false, "reset keyboard shortcuts")
	f.BoolVar(&sel.Playback, "playback", false, "reset playback and recording")
	f.BoolVar(&sel.Effects, "effects", false, "reset effects")
	f.BoolVar(&sel.All, "all", false, "reset every category")
	f.BoolVar(&sel.UseFullKeys, "full-keys", false, "use the full shortcut set instead of the standard one")
	return cmd
}

// selectionFromArgs adds the categories named in args to sel.
func selectionFromArgs(sel *reset.Selection, args []string) error {
	for _, a := range args {
		if a == "all" {
			sel.All = true
			continue
		}
		c, err := reset.ParseCategory(a)
		if err != nil {
			return err
		}
		sel.Set(c, true)
	}
	return nil
}
