package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/atelier/internal/agecalc"
)

func (a *App) Children(ctx context.Context) error {
	ctx, cancel := a.rpcContext(ctx)
	defer cancel()

	children, err := a.family.ListChildren(ctx)
	if err != nil {
		return err
	}
	if len(children) == 0 {
		fmt.Fprintln(a.out, "No children yet, use 'addchild'")
		return nil
	}
	for _, c := range children {
		born := c.BirthDate
		if born == "" {
			born = "birth date unknown"
		}
		fmt.Fprintf(a.out, "%s  %s (%s) %s\n", c.Id, c.Name, born, c.Color)
	}
	return nil
}

func (a *App) AddChild(ctx context.Context) error {
	name, err := a.ask("Child name")
	if err != nil {
		return err
	}
	if name == "" {
		return errors.New("child name is required")
	}

	birth, err := a.ask("Birth date (YYYY-MM-DD, empty if unknown)")
	if err != nil {
		return err
	}
	if birth != "" {
		if _, err := agecalc.ParseDate(birth); err != nil {
			return err
		}
	}

	color, err := a.ask("Color (empty for default)")
	if err != nil {
		return err
	}

	ctx, cancel := a.rpcContext(ctx)
	defer cancel()

	child, err := a.family.CreateChild(ctx, name, birth, color)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Added %s (%s)\n", child.Name, child.Id)
	return nil
}

func (a *App) DeleteChild(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usageError{usage: "delchild <id>"}
	}

	ctx, cancel := a.rpcContext(ctx)
	defer cancel()

	if err := a.family.DeleteChild(ctx, args[0]); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Child removed, their artworks are kept")
	return nil
}
