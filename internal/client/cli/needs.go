package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/dkrastins/needmarket/internal/client/api"
	"github.com/dkrastins/needmarket/internal/client/models"
	"github.com/dkrastins/needmarket/internal/common"
)

var getMultiline = GetMultiline

// Browse lists every open need. Available without a session.
func (a *App) Browse(ctx context.Context) error {
	needs, err := a.market.ListNeeds(ctx)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	if len(needs) == 0 {
		printlnFn("No open needs right now")
		return nil
	}
	for _, n := range needs {
		printlnFn(formatNeedLine(&n))
	}
	return nil
}

// ShowNeed prints one need in full, together with its bids.
func (a *App) ShowNeed(ctx context.Context, id string) error {
	n, err := a.market.GetNeed(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			printlnFn("Need not found:", id)
			return nil
		}
		printlnFn("Error:", err.Error())
		return err
	}

	printlnFn(fmt.Sprintf("%s [%s]", n.Title, n.Status))
	printlnFn(n.Description)
	printlnFn(fmt.Sprintf("Category: %s  Location: %s", n.Category, n.Location))
	printlnFn(fmt.Sprintf("Starting bid: %.2f  Auction ends: %s", n.StartingBid, n.AuctionEnd))

	bids := n.Bids
	if len(bids) == 0 {
		// detail endpoints may omit bids; fetch them separately
		bids, err = a.market.NeedBids(ctx, id)
		if err != nil {
			printlnFn("Error loading bids:", err.Error())
			return err
		}
	}
	if len(bids) == 0 {
		printlnFn("No bids yet")
		return nil
	}
	printlnFn(fmt.Sprintf("Bids (%d):", len(bids)))
	for _, b := range bids {
		printlnFn(fmt.Sprintf("  %s  %.2f  [%s]  %s", b.ID, b.Amount, b.Status, b.Description))
	}
	return nil
}

// PostNeed interactively collects a new need and submits it.
func (a *App) PostNeed(ctx context.Context) error {
	title, err := getSimpleText(a.reader, "Title", os.Stdout)
	if err != nil {
		return err
	}
	if title == "" {
		printlnFn("Title must not be empty")
		return nil
	}
	description, err := getMultiline(a.reader, "Description", os.Stdout)
	if err != nil {
		return err
	}
	category, err := getSimpleText(a.reader, "Category", os.Stdout)
	if err != nil {
		return err
	}
	location, err := getSimpleText(a.reader, "Location", os.Stdout)
	if err != nil {
		return err
	}
	startStr, err := getSimpleText(a.reader, "Starting bid", os.Stdout)
	if err != nil {
		return err
	}
	starting, err := strconv.ParseFloat(startStr, 64)
	if err != nil || starting < 0 {
		printlnFn("Starting bid must be a non-negative number")
		return nil
	}
	auctionEnd, err := getSimpleText(a.reader, "Auction end (e.g. 2026-09-15T18:00:00Z)", os.Stdout)
	if err != nil {
		return err
	}

	r := api.NeedRequest{
		Title:       title,
		Description: description,
		Category:    category,
		Location:    location,
		StartingBid: starting,
		AuctionEnd:  auctionEnd,
	}
	n, err := a.market.CreateNeed(ctx, r)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	printlnFn("Posted need", n.ID)
	return nil
}

// MyNeeds lists the needs posted by the current user and offers to delete one.
func (a *App) MyNeeds(ctx context.Context) error {
	needs, err := a.market.MyNeeds(ctx)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	if len(needs) == 0 {
		printlnFn("You have not posted any needs")
		return nil
	}
	for _, n := range needs {
		printlnFn(formatNeedLine(&n))
	}

	id, err := getSimpleText(a.reader, "Need id to delete (empty to skip)", os.Stdout)
	if err != nil {
		return err
	}
	if id == "" {
		return nil
	}
	if err := a.market.DeleteNeed(ctx, id); err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	printlnFn("Need deleted")
	return nil
}

func formatNeedLine(n *models.Need) string {
	return fmt.Sprintf("%s  %-30s  %-10s  %.2f  %s", n.ID, n.Title, n.Status, n.StartingBid, n.Location)
}
