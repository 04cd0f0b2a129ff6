package main

import (
	"fmt"
	"os"
	"time"

	"github.com/ArowuTest/raffle-backend/internal/models"
	"github.com/ArowuTest/raffle-backend/pkg/jwt"
	"github.com/urfave/cli"
)

var issueTokenCommand = cli.Command{
	Name:  "issue-token",
	Usage: "mint a bearer token for the keeper or the randomness coordinator",
	Flags: []cli.Flag{
		cli.StringFlag{
			Name:  "role",
			Value: models.RoleKeeper,
			Usage: "keeper, oracle or admin",
		},
		cli.StringFlag{
			Name:  "subject",
			Usage: "token subject, defaults to the role",
		},
		cli.DurationFlag{
			Name:  "ttl",
			Value: 30 * 24 * time.Hour,
		},
	},
	Action: issueToken,
}

// tokenSecret picks the signing secret the server verifies the role with
func tokenSecret(role string) (string, error) {
	switch role {
	case models.RoleOracle:
		return os.Getenv("JWT_ORACLESECRET"), nil
	case models.RoleKeeper, models.RoleAdmin:
		return os.Getenv("JWT_SECRET"), nil
	default:
		return "", fmt.Errorf("unknown role %q", role)
	}
}

func issueToken(c *cli.Context) error {
	role := c.String("role")
	secret, err := tokenSecret(role)
	if err != nil {
		return cli.NewExitError(err.Error(), 2)
	}
	tokens, err := jwt.NewTokenService(secret, c.Duration("ttl"))
	if err != nil {
		return err
	}

	subject := c.String("subject")
	if subject == "" {
		subject = role
	}
	token, expiresAt, err := tokens.Issue(subject, "", role)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.App.Writer, "%s\n# expires %s\n", token, expiresAt.Format(time.RFC3339))
	return nil
}
