package sizeparser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const megabyte = int64(1) << 20

// MaxMB caps parsed sizes at 1 PB expressed in whole megabytes.
const MaxMB = int64(1) << 30

var sizeRe = regexp.MustCompile(`^(\d+(?:\.\d+)?)([KMGTP]?B)$`)

// ParseMB parses a size given either as a bare whole-megabyte count ("512")
// or as a suffixed quantity ("512MB", "2GB", "1.5GB") and returns the size
// in whole megabytes. Sizes below one megabyte or not expressible as whole
// megabytes are rejected.
func ParseMB(sizeStr string) (int64, error) {
	if sizeStr == "" {
		return 0, fmt.Errorf("size string cannot be empty")
	}

	sizeStr = strings.ToUpper(strings.TrimSpace(sizeStr))

	// Bare integers are whole megabytes.
	if mb, err := strconv.ParseInt(sizeStr, 10, 64); err == nil {
		return checkRange(mb)
	}

	matches := sizeRe.FindStringSubmatch(sizeStr)
	if matches == nil {
		return 0, fmt.Errorf("invalid size format: %s", sizeStr)
	}

	value, err := strconv.ParseFloat(matches[1], 64)
	if err != nil {
		return 0, fmt.Errorf("invalid numeric value: %s", matches[1])
	}

	var multiplier int64
	switch matches[2] {
	case "B":
		multiplier = 1
	case "KB":
		multiplier = 1024
	case "MB":
		multiplier = 1024 * 1024
	case "GB":
		multiplier = 1024 * 1024 * 1024
	case "TB":
		multiplier = 1024 * 1024 * 1024 * 1024
	case "PB":
		multiplier = 1024 * 1024 * 1024 * 1024 * 1024
	default:
		return 0, fmt.Errorf("unsupported unit: %s", matches[2])
	}

	bytes := int64(value * float64(multiplier))
	if bytes < megabyte {
		return 0, fmt.Errorf("size must be at least 1MB, got %s", sizeStr)
	}
	if bytes%megabyte != 0 {
		return 0, fmt.Errorf("size must be a whole number of megabytes, got %s", sizeStr)
	}
	return checkRange(bytes / megabyte)
}

func checkRange(mb int64) (int64, error) {
	if mb < 1 {
		return 0, fmt.Errorf("size must be at least 1MB")
	}
	if mb > MaxMB {
		return 0, fmt.Errorf("size must be at most 1PB")
	}
	return mb, nil
}
