package cli

import (
	"errors"
	"fmt"
	"net/mail"
	"os"
	"strings"

	"github.com/habitmate/habitmate/internal/db"
	"github.com/habitmate/habitmate/internal/security"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 6

// RunResetPasswordCommand replaces the stored account password from the
// command line. When run on a terminal it prompts for a new password;
// otherwise a temporary one is generated and printed.
func RunResetPasswordCommand(dbPath string, email string) error {
	normalizedEmail := strings.ToLower(strings.TrimSpace(email))
	if normalizedEmail == "" {
		return errors.New("email is required")
	}
	if _, err := mail.ParseAddress(normalizedEmail); err != nil {
		return fmt.Errorf("invalid email address: %w", err)
	}

	database, err := db.OpenSQLite(dbPath)
	if err != nil {
		return fmt.Errorf("database init failed: %w", err)
	}

	users := db.NewUserRepository(db.NewRecordStore(database))
	user, err := users.Load()
	if err != nil {
		return fmt.Errorf("load user: %w", err)
	}
	if user == nil || user.Email != normalizedEmail {
		return fmt.Errorf("user %s not found", normalizedEmail)
	}

	password, generated, err := resolveNewPassword(os.Stdin)
	if err != nil {
		return err
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	user.PasswordHash = string(passwordHash)
	if err := users.Save(*user); err != nil {
		return fmt.Errorf("update user password: %w", err)
	}

	fmt.Println("✅ Password reset successful")
	if generated {
		fmt.Printf("Temporary password: %s\n", password)
		fmt.Println("Change it after the next login.")
	}

	return nil
}

func resolveNewPassword(stdin *os.File) (string, bool, error) {
	if isTerminal(stdin) {
		fmt.Print("New password (leave empty to generate one): ")
		line, err := readPasswordNoEcho(stdin)
		fmt.Println()
		if err != nil {
			return "", false, fmt.Errorf("read password: %w", err)
		}
		entered := strings.TrimSpace(string(line))
		if entered != "" {
			if len(entered) < minPasswordLength {
				return "", false, fmt.Errorf("password must be at least %d characters", minPasswordLength)
			}
			return entered, false, nil
		}
	}

	password, err := generateTemporaryPassword(12)
	if err != nil {
		return "", false, fmt.Errorf("generate temporary password: %w", err)
	}
	return password, true, nil
}

func isTerminal(file *os.File) bool {
	if file == nil {
		return false
	}
	info, err := file.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}

func generateTemporaryPassword(length int) (string, error) {
	if length < 8 {
		length = 8
	}

	const alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz23456789"
	return security.RandomString(length, alphabet)
}
