package workflows

import (
	"context"
	"errors"
	"fmt"

	"github.com/PolarWolf314/quick-gist/internal/credentials"
	qerrors "github.com/PolarWolf314/quick-gist/internal/errors"
	logger "github.com/PolarWolf314/quick-gist/internal/logging"
)

// UnlockOptions configures the passphrase retry loop.
type UnlockOptions struct {
	// MaxAttempts caps the number of passphrase prompts. Zero keeps asking
	// until the passphrase is right or the prompt fails.
	MaxAttempts int

	// OnWrongPassword runs before the retry warning is printed, e.g. to
	// clear a spinner from the terminal line.
	OnWrongPassword func()

	Logger logger.Logger
}

// UnlockToken asks for the passphrase of a protected token until it opens.
//
// A wrong passphrase asks again. A malformed token, a failing prompt or a
// cancelled context ends the loop.
//
// Returns ErrMalformedToken if the stored token is not a protected token.
// Returns ErrTooManyAttempts (wrapping ErrWrongPassword) once MaxAttempts is used up.
func UnlockToken(ctx context.Context, protected string, prompt PassphraseFunc, opts UnlockOptions) (string, error) {
	log := opts.Logger

	for attempt := 1; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		passphrase, err := prompt("Password: ")
		if err != nil {
			return "", fmt.Errorf("reading password: %w", err)
		}

		log.Debugf("Deriving key for attempt %d", attempt)
		plain, err := credentials.RecoverToken(protected, passphrase)
		for i := range passphrase {
			passphrase[i] = 0
		}

		switch {
		case err == nil:
			log.Infof("Token unlocked after %d attempt(s)", attempt)
			return string(plain), nil
		case errors.Is(err, qerrors.ErrWrongPassword):
			if opts.MaxAttempts > 0 && attempt >= opts.MaxAttempts {
				return "", fmt.Errorf("%w (%d): %w", qerrors.ErrTooManyAttempts, attempt, qerrors.ErrWrongPassword)
			}
			if opts.OnWrongPassword != nil {
				opts.OnWrongPassword()
			}
			log.WarnfUser("Invalid password, please try again")
		default:
			return "", err
		}
	}
}
