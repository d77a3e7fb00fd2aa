package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// readPassword is a test seam for term.ReadPassword.
var readPassword = term.ReadPassword

// GetSimpleText prints a prompt to w and reads a single line from
// reader, trimmed. If EOF occurs after some input was read, the partial
// line is returned.
func GetSimpleText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n> "); err != nil {
		return "", err
	}
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// GetPassword prompts for a password and reads it from the terminal
// without echo. The caller should wipe the returned bytes when done.
func GetPassword(w io.Writer) ([]byte, error) {
	if _, err := fmt.Fprint(w, "Mot de passe: "); err != nil {
		return nil, err
	}
	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return nil, err
	}
	return pw, nil
}

// GetOptionalBool reads a yes/no answer; an empty line means "no
// preference" and returns nil. Accepted forms: o/oui/y/yes and n/non/no,
// case-insensitive.
func GetOptionalBool(reader *bufio.Reader, prompt string, w io.Writer) (*bool, error) {
	answer, err := GetSimpleText(reader, prompt+" (o/n, vide = indifférent)", w)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(answer) {
	case "":
		return nil, nil
	case "o", "oui", "y", "yes":
		v := true
		return &v, nil
	case "n", "non", "no":
		v := false
		return &v, nil
	default:
		return nil, fmt.Errorf("réponse non reconnue: %q", answer)
	}
}

// GetChoice reads a value constrained to the given options; an empty
// line selects fallback.
func GetChoice(reader *bufio.Reader, prompt, fallback string, options []string, w io.Writer) (string, error) {
	answer, err := GetSimpleText(reader, fmt.Sprintf("%s (%s, défaut %q)", prompt, strings.Join(options, "/"), fallback), w)
	if err != nil {
		return "", err
	}
	if answer == "" {
		return fallback, nil
	}
	answer = strings.ToLower(answer)
	for _, opt := range options {
		if answer == opt {
			return answer, nil
		}
	}
	return "", fmt.Errorf("choix invalide: %q", answer)
}
