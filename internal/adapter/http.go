package adapter

import (
	"bufio"
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-pass-god/internal/config"
	"github.com/MKhiriev/go-pass-god/internal/logger"
	"github.com/MKhiriev/go-pass-god/internal/utils"
	"github.com/MKhiriev/go-pass-god/models"
)

// rangePrefixLen is the number of hex characters of the SHA-1 digest sent
// to the range API.
const rangePrefixLen = 5

type httpBreachAdapter struct {
	passwords *utils.HTTPClient
	accounts  *utils.HTTPClient

	apiKey string

	logger *logger.Logger
}

// NewHTTPBreachAdapter constructs an HTTP implementation of [BreachAdapter].
// It normalises both provider base URLs and configures one client per API
// with the request timeout, retry count and user agent of adapterCfg.
//
// Returns [ErrInvalidBaseURL] if either URL is empty or cannot be parsed.
func NewHTTPBreachAdapter(adapterCfg config.Adapter, logger *logger.Logger) (BreachAdapter, error) {
	passwordsURL, err := normalizeBaseURL(adapterCfg.PasswordsURL)
	if err != nil {
		return nil, fmt.Errorf("%w: passwords: %w", ErrInvalidBaseURL, err)
	}
	accountsURL, err := normalizeBaseURL(adapterCfg.AccountsURL)
	if err != nil {
		return nil, fmt.Errorf("%w: accounts: %w", ErrInvalidBaseURL, err)
	}

	opts := utils.HTTPClientOptions{
		UserAgent:  adapterCfg.UserAgent,
		Timeout:    adapterCfg.RequestTimeout,
		RetryCount: adapterCfg.RetryCount,
	}

	passwordsOpts := opts
	passwordsOpts.BaseURL = passwordsURL
	accountsOpts := opts
	accountsOpts.BaseURL = accountsURL

	return &httpBreachAdapter{
		passwords: utils.NewHTTPClient(passwordsOpts),
		accounts:  utils.NewHTTPClient(accountsOpts),
		apiKey:    adapterCfg.APIKey,
		logger:    logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// PasswordIsBreached implements [BreachAdapter]. It GETs
// /range/{prefix} with padding requested and scans the SUFFIX:COUNT lines
// for the local suffix. Padding entries carry a zero count and never match.
func (h *httpBreachAdapter) PasswordIsBreached(ctx context.Context, secret string) (bool, error) {
	prefix, suffix := rangeKey(secret)

	resp, err := h.passwords.R().
		SetContext(ctx).
		SetHeader("Add-Padding", "true").
		SetPathParam("prefix", prefix).
		Get("/range/{prefix}")
	if err != nil {
		h.logger.Warn().Err(err).Msg("password range request failed")
		return false, fmt.Errorf("%w: %w", ErrBreachCheckUnavailable, err)
	}

	if err = mapHTTPError(resp); err != nil {
		if errors.Is(err, ErrNotFound) {
			return false, nil
		}
		h.logger.Warn().Int("status", resp.StatusCode()).Msg("password range request rejected")
		return false, err
	}

	found, err := suffixBreached(string(resp.Body()), suffix)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBreachCheckUnavailable, err)
	}
	return found, nil
}

// EmailBreaches implements [BreachAdapter]. It GETs
// /breachedaccount/{email}?truncateResponse=false with the API key header
// and decodes the JSON array of breach descriptors. A 404 is an empty result.
func (h *httpBreachAdapter) EmailBreaches(ctx context.Context, email string) ([]models.BreachDescriptor, error) {
	req := h.accounts.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetPathParam("account", strings.TrimSpace(email)).
		SetQueryParam("truncateResponse", "false")
	if h.apiKey != "" {
		req.SetHeader("hibp-api-key", h.apiKey)
	}

	resp, err := req.Get("/breachedaccount/{account}")
	if err != nil {
		h.logger.Warn().Err(err).Msg("breached account request failed")
		return nil, fmt.Errorf("%w: %w", ErrBreachCheckUnavailable, err)
	}

	if err = mapHTTPError(resp); err != nil {
		if errors.Is(err, ErrNotFound) {
			return []models.BreachDescriptor{}, nil
		}
		h.logger.Warn().Int("status", resp.StatusCode()).Msg("breached account request rejected")
		return nil, err
	}

	var breaches []models.BreachDescriptor
	if err = json.Unmarshal(resp.Body(), &breaches); err != nil {
		return nil, fmt.Errorf("%w: decode breached account response: %w", ErrBreachCheckUnavailable, err)
	}
	if breaches == nil {
		breaches = []models.BreachDescriptor{}
	}

	return breaches, nil
}

// rangeKey splits the upper-case hex SHA-1 of secret into the part that is
// sent and the part that stays local.
func rangeKey(secret string) (prefix, suffix string) {
	sum := sha1.Sum([]byte(secret))
	digest := strings.ToUpper(hex.EncodeToString(sum[:]))
	return digest[:rangePrefixLen], digest[rangePrefixLen:]
}

// suffixBreached scans a range response for suffix with a positive count.
func suffixBreached(body, suffix string) (bool, error) {
	scanner := bufio.NewScanner(strings.NewReader(body))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		candidate, rawCount, ok := strings.Cut(line, ":")
		if !ok {
			return false, fmt.Errorf("malformed range line")
		}
		if !strings.EqualFold(candidate, suffix) {
			continue
		}

		count, err := strconv.ParseInt(strings.TrimSpace(rawCount), 10, 64)
		if err != nil {
			return false, fmt.Errorf("malformed range count: %w", err)
		}
		return count > 0, nil
	}

	if err := scanner.Err(); err != nil {
		return false, fmt.Errorf("read range response: %w", err)
	}
	return false, nil
}
