package pagination

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const timeFormat = time.RFC3339Nano // Use a precise time format

// EncodeYearCursorToken creates an opaque token from the sort key of the last row on a page:
// the record year, its creation time and its ID.
func EncodeYearCursorToken(year int, createdAt time.Time, id string) string {
	return EncodeMultiFieldToken(strconv.Itoa(year), createdAt.UTC().Format(timeFormat), id)
}

// DecodeYearCursorToken parses a token produced by EncodeYearCursorToken.
func DecodeYearCursorToken(token string) (int, time.Time, string, error) {
	parts, err := DecodeMultiFieldToken(token)
	if err != nil {
		return 0, time.Time{}, "", err
	}
	if len(parts) != 3 {
		return 0, time.Time{}, "", fmt.Errorf("invalid pagination token format (split)")
	}

	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, time.Time{}, "", fmt.Errorf("invalid pagination token format (year parse): %w", err)
	}
	createdAt, err := time.Parse(timeFormat, parts[1])
	if err != nil {
		return 0, time.Time{}, "", fmt.Errorf("invalid pagination token format (created_at parse): %w", err)
	}
	if parts[2] == "" {
		return 0, time.Time{}, "", fmt.Errorf("invalid pagination token format (empty id)")
	}
	return year, createdAt, parts[2], nil
}

// EncodeMultiFieldToken creates a token with any number of string fields
func EncodeMultiFieldToken(fields ...string) string {
	tokenStr := strings.Join(fields, "|")
	return base64.URLEncoding.EncodeToString([]byte(tokenStr))
}

// DecodeMultiFieldToken decodes a token into its component fields
func DecodeMultiFieldToken(token string) ([]string, error) {
	decodedBytes, err := base64.URLEncoding.DecodeString(token)
	if err != nil {
		return nil, fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}
	return strings.Split(string(decodedBytes), "|"), nil
}
