package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"inventory-control/core/scan"
	"inventory-control/feature/inventory"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var keysMode bool

// scanCmd counts codes from arguments or standard input.
var scanCmd = &cobra.Command{
	Use:   "scan [code...]",
	Short: "Count scanned codes into the real inventory",
	Long: `Processes each code given as argument. Without arguments, reads one code per
line from standard input until EOF.

With --keys, standard input is treated as raw keystrokes from a scanner acting as
a keyboard: characters accumulate and a newline submits the code.

Examples:
  # Scan two codes
  scan 7501234567890 7501234567891

  # Pipe a file of codes
  scan < codes.txt

  # Attach a keyboard-wedge scanner
  scan --keys`,
	RunE: runScan,
}

func init() {
	scanCmd.Flags().BoolVar(&keysMode, "keys", false, "Read raw keystrokes instead of whole lines")
	RootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	sess, err := loadSession(cmd.Context(), nil)
	if err != nil {
		return err
	}
	defer sess.Close()

	var count int
	switch {
	case len(args) > 0:
		count, err = scanCodes(sess.service, args)
	case keysMode:
		count, err = feedKeys(sess.service, os.Stdin)
	default:
		count, err = scanLines(sess.service, os.Stdin)
	}
	if err != nil {
		return err
	}

	sess.logger.Info("Scan finished", zap.Int("codes", count))
	return nil
}

func scanCodes(svc *inventory.Service, codes []string) (int, error) {
	count := 0
	for _, code := range codes {
		ok, err := scanOne(svc, code)
		if err != nil {
			return count, err
		}
		if ok {
			count++
		}
	}
	return count, nil
}

// scanLines processes one code per line. Blank lines are skipped.
func scanLines(svc *inventory.Service, r io.Reader) (int, error) {
	count := 0
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		ok, err := scanOne(svc, scanner.Text())
		if err != nil {
			return count, err
		}
		if ok {
			count++
		}
	}
	if err := scanner.Err(); err != nil {
		return count, fmt.Errorf("failed to read codes: %w", err)
	}
	return count, nil
}

// feedKeys forwards every rune of r to the keystroke buffer.
func feedKeys(svc *inventory.Service, r io.Reader) (int, error) {
	count := 0
	reader := bufio.NewReader(r)
	for {
		ch, _, err := reader.ReadRune()
		if errors.Is(err, io.EOF) {
			return count, nil
		}
		if err != nil {
			return count, fmt.Errorf("failed to read keys: %w", err)
		}

		res, err := svc.Key(string(ch))
		if err != nil {
			return count, err
		}
		if res.Scan != nil {
			count++
		}
	}
}

func scanOne(svc *inventory.Service, raw string) (bool, error) {
	_, err := svc.Scan(raw)
	if errors.Is(err, scan.ErrEmptyCode) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
