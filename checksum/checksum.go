package checksum

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// SumFileName is the name of the integrity record written
// at the install root.
const SumFileName = ".scaffolder.sum"

// FileDigest computes the SHA256 hex digest of the file at
// path.
func FileDigest(path string) (result string, retErr error) {
	const errCtx = "computing file digest"

	fi, err := os.Open(path) //nolint:gosec // path is caller-provided by design
	if err != nil {
		return "", fmt.Errorf("%s: %w", errCtx, err)
	}

	defer func() {
		if closeErr := fi.Close(); closeErr != nil && retErr == nil {
			retErr = fmt.Errorf("%s: %w", errCtx, closeErr)
		}
	}()

	ha := sha256.New()

	if _, err := io.Copy(ha, fi); err != nil {
		return "", fmt.Errorf("%s: %w", errCtx, err)
	}

	return hex.EncodeToString(ha.Sum(nil)), nil
}

// Write records the digests of the given install-relative
// paths into root/.scaffolder.sum, one "<digest>  <path>"
// line per file, sorted by path.
func Write(root string, relPaths []string) error {
	const errCtx = "writing checksum record"

	sorted := make([]string, len(relPaths))
	copy(sorted, relPaths)
	sort.Strings(sorted)

	var sb strings.Builder

	for _, rp := range sorted {
		digest, err := FileDigest(
			filepath.Join(root, filepath.FromSlash(rp)),
		)
		if err != nil {
			return fmt.Errorf("%s: %w", errCtx, err)
		}

		sb.WriteString(digest)
		sb.WriteString("  ")
		sb.WriteString(rp)
		sb.WriteByte('\n')
	}

	sp := filepath.Join(root, SumFileName)

	if err := os.WriteFile(
		sp, []byte(sb.String()), 0o600,
	); err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	return nil
}

// Verify recomputes the digest of every file listed in
// root/.scaffolder.sum and returns the install-relative
// paths that are missing or whose content has changed.
func Verify(root string) ([]string, error) {
	const errCtx = "verifying checksum record"

	content, err := os.ReadFile( //nolint:gosec // root is caller-provided by design
		filepath.Join(root, SumFileName),
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtx, err)
	}

	var drifted []string

	for _, line := range strings.Split(
		string(content), "\n",
	) {
		parts := strings.SplitN(line, "  ", 2)
		if len(parts) != 2 {
			continue
		}

		digest, err := FileDigest(
			filepath.Join(
				root, filepath.FromSlash(parts[1]),
			),
		)
		if err != nil || digest != parts[0] {
			drifted = append(drifted, parts[1])
		}
	}

	return drifted, nil
}
