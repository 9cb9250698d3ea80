package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/dkrastins/needmarket/internal/client/api"
)

// PlaceBid collects an amount and a pitch and places a bid on the given need.
func (a *App) PlaceBid(ctx context.Context, needID string) error {
	amountStr, err := getSimpleText(a.reader, "Amount", os.Stdout)
	if err != nil {
		return err
	}
	amount, err := strconv.ParseFloat(amountStr, 64)
	if err != nil || amount <= 0 {
		printlnFn("Amount must be a positive number")
		return nil
	}
	pitch, err := getMultiline(a.reader, "Describe your offer", os.Stdout)
	if err != nil {
		return err
	}

	b, err := a.market.PlaceBid(ctx, needID, api.BidRequest{Amount: amount, Description: pitch})
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	printlnFn(fmt.Sprintf("Bid %s placed: %.2f on %s", b.ID, b.Amount, needID))
	return nil
}

// MyBids lists the current user's bids and offers to withdraw one.
func (a *App) MyBids(ctx context.Context) error {
	bids, err := a.market.MyBids(ctx)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	if len(bids) == 0 {
		printlnFn("You have not placed any bids")
		return nil
	}
	for _, b := range bids {
		printlnFn(fmt.Sprintf("%s  %-30s  %.2f  [%s]", b.ID, b.NeedTitle, b.Amount, b.Status))
	}

	id, err := getSimpleText(a.reader, "Bid id to withdraw (empty to skip)", os.Stdout)
	if err != nil {
		return err
	}
	if id == "" {
		return nil
	}
	if err := a.market.WithdrawBid(ctx, id); err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	printlnFn("Bid withdrawn")
	return nil
}
