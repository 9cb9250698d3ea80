package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/dkrastins/needmarket/internal/client/api"
)

// Profile shows a user's public profile with their rating and completed
// work. With an empty id it shows the current user's own profile.
func (a *App) Profile(ctx context.Context, id string) error {
	if id == "" {
		u := a.store.User()
		if u == nil {
			printlnFn("Not logged in")
			return nil
		}
		id = u.ID
	}

	u, err := a.market.GetUser(ctx, id)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	printlnFn(fmt.Sprintf("%s <%s>", u.Username, u.Email))
	if u.FullName != "" {
		printlnFn("Name:", u.FullName)
	}
	if u.Location != "" {
		printlnFn("Location:", u.Location)
	}
	if u.Bio != "" {
		printlnFn("Bio:", u.Bio)
	}

	if r, err := a.market.UserRating(ctx, id); err == nil {
		printlnFn(fmt.Sprintf("Rating: %.1f (%d ratings)", r.AverageRating, r.TotalRatings))
	}
	if done, err := a.market.CompletedNeeds(ctx, id); err == nil && len(done) > 0 {
		printlnFn(fmt.Sprintf("Completed needs (%d):", len(done)))
		for _, n := range done {
			printlnFn(" ", n.Title)
		}
	}
	return nil
}

// EditProfile prompts for the editable profile fields, submits the update and
// refreshes the session's cached user. Empty answers keep the current value.
func (a *App) EditProfile(ctx context.Context) error {
	u := a.store.User()
	if u == nil {
		printlnFn("Not logged in")
		return nil
	}

	fullName, err := getSimpleText(a.reader, fmt.Sprintf("Full name [%s]", u.FullName), os.Stdout)
	if err != nil {
		return err
	}
	location, err := getSimpleText(a.reader, fmt.Sprintf("Location [%s]", u.Location), os.Stdout)
	if err != nil {
		return err
	}
	bio, err := getMultiline(a.reader, "Bio", os.Stdout)
	if err != nil {
		return err
	}

	upd := api.ProfileUpdate{FullName: fullName, Location: location, Bio: bio}
	updated, err := a.market.UpdateProfile(ctx, u.ID, upd)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	if err := a.store.SetUser(ctx, updated); err != nil {
		a.log.Warn(ctx, "failed to persist updated profile", "error", err)
	}
	printlnFn("Profile updated")
	return nil
}
