package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/ashish-aa/skillmesh/internal/client/navigation"
)

// Notify implements navigation.Notifier by printing the notice.
func (a *App) Notify(msg string) {
	fmt.Println(msg)
}

func (a *App) getStatus() string {
	s := ""
	if a.session.Account.Email != "" {
		s = a.session.Account.Email + " "
	}
	s += string(a.destination)
	if a.Mode != "" {
		s = s + " " + string(a.Mode)
	}
	return fmt.Sprintf("(%s)", s)
}

// commands lists what is available at each destination, shown by help and
// used to gate dispatch.
var commands = map[navigation.Destination][]string{
	navigation.Welcome:           {"signup", "signin"},
	navigation.VerifyEmail:       {"resend", "verify", "logout"},
	navigation.ProfileForm:       {"profile", "logout"},
	navigation.CategorySelection: {"categories", "logout"},
	navigation.SkillOffer:        {"offer", "skip", "logout"},
	navigation.MainArea:          {"offer", "list", "whoami", "logout"},
}

func (a *App) available(cmd string) bool {
	for _, c := range commands[a.destination] {
		if c == cmd {
			return true
		}
	}
	return false
}

// Root runs the command loop until exit or end of input. Commands are
// gated by the current destination, so e.g. an offer cannot be posted
// before the profile and category steps are done.
func (a *App) Root(ctx context.Context) {
	fmt.Println("Welcome to SkillMesh CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Printf("skillmesh %s> ", a.getStatus())
		if !scanner.Scan() {
			break
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			fmt.Println("Available commands:", strings.Join(append(commands[a.destination], "help", "exit"), ", "))
			continue
		case "exit", "quit":
			fmt.Println("Bye!")
			return
		}

		if !a.available(cmd) {
			fmt.Println("Unknown command:", cmd)
			continue
		}

		switch cmd {
		case "signup":
			a.SignUp(ctx)
		case "signin":
			a.SignIn(ctx)
		case "resend":
			a.ResendVerification(ctx)
		case "verify":
			a.CheckVerification(ctx)
		case "profile":
			a.CompleteProfile(ctx)
		case "categories":
			a.SelectCategories(ctx)
		case "offer":
			a.PostOffer(ctx)
		case "skip":
			a.navigate(navigation.MainArea)
		case "list":
			a.ListOffers(ctx)
		case "whoami":
			a.WhoAmI(ctx)
		case "logout":
			a.Logout(ctx)
		}
	}
}
