package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wanmail/pom/pages"
)

func addRemoveCmd(gf *globalFlags) *cobra.Command {
	var clicks int
	cmd := &cobra.Command{
		Use:   "addremove",
		Short: "Add delete buttons and check that each one shows up",
		RunE: run(gf, func(cmd *cobra.Command, e *env) error {
			if err := e.session.NavigateTo(e.cfg.BaseURL); err != nil {
				return err
			}
			if err := pages.NewMainPage(e.session).ClickLink("Add/Remove Elements"); err != nil {
				return err
			}
			p := pages.NewAddRemoveElementsPage(e.session)
			if _, err := p.IsOpened(); err != nil {
				return err
			}
			for i := 0; i < clicks; i++ {
				if err := p.ClickAddElementButton(); err != nil {
					return err
				}
			}
			n, err := p.DeleteButtonCount()
			if err != nil {
				return err
			}
			if n != clicks {
				return fmt.Errorf("found %d delete buttons after %d clicks", n, clicks)
			}
			cmd.Printf("OK: %d delete buttons\n", n)
			return nil
		}),
	}
	cmd.Flags().IntVar(&clicks, "clicks", 3, "number of times to click the add button")
	return cmd
}

func loginCmd(gf *globalFlags) *cobra.Command {
	var invalid bool
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and check the flash message",
		RunE: run(gf, func(cmd *cobra.Command, e *env) error {
			user, pass, want := e.data.InvalidUser.Username, e.data.InvalidUser.Password, e.data.Messages.LoginFailed
			if !invalid {
				var err error
				if user, err = e.cfg.Username(); err != nil {
					return err
				}
				if pass, err = e.cfg.Password(); err != nil {
					return err
				}
				want = e.data.Messages.LoginSuccess
			}
			p := pages.NewLoginPage(e.session)
			if err := p.Open(e.data.URLs.LoginPage); err != nil {
				return err
			}
			if err := p.Login(user, pass); err != nil {
				return err
			}
			msg, err := p.FlashMessage()
			if err != nil {
				return err
			}
			if !strings.Contains(msg, want) {
				return fmt.Errorf("flash message %q does not contain %q", msg, want)
			}
			cmd.Printf("OK: %s\n", want)
			return nil
		}),
	}
	cmd.Flags().BoolVar(&invalid, "invalid", false, "log in with the invalid fixture user and expect a failure")
	return cmd
}

func screenshotCmd(gf *globalFlags) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "screenshot [path]",
		Short: "Open a page and save a screenshot of it",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "/"
			if len(args) == 1 {
				path = args[0]
			}
			return run(gf, func(cmd *cobra.Command, e *env) error {
				if err := e.session.NavigateTo(path); err != nil {
					return err
				}
				saved, err := e.session.SaveScreenshot(out)
				if err != nil {
					return err
				}
				cmd.Printf("Screenshot saved to %s\n", saved)
				return nil
			})(cmd, args)
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "", "file to write, a unique name in the screenshot directory by default")
	return cmd
}
