package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

func (a *App) getStatus() string {
	if !a.isLoggedIn() {
		return ""
	}
	if a.userEmail == "" {
		return "(session)"
	}
	return fmt.Sprintf("(%s)", a.userEmail)
}

func (a *App) Root(ctx context.Context) {

	fmt.Println("Welcome to the myapp CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Printf("myapp %s> ", a.getStatus())
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Println("Available commands: whoami, ping, logout, exit")
			} else {
				fmt.Println("Available commands: login, register, verify, resend, forgot, reset, ping, exit")
			}

		case "login":
			a.Login(ctx)
		case "register":
			a.Register(ctx)
		case "logout":
			a.Logout(ctx)
		case "forgot":
			a.ForgotPassword(ctx)
		case "reset":
			a.ResetPassword(ctx)
		case "verify":
			a.VerifyEmail(ctx)
		case "resend":
			a.ResendVerification(ctx)
		case "whoami":
			a.Whoami(ctx)
		case "ping":
			a.Ping(ctx)
		case "exit", "quit":
			fmt.Println("Bye!")
			return
		default:
			fmt.Println("Unknown command:", cmd)
		}
	}

}
