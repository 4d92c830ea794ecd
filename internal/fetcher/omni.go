package fetcher

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Options parameterise the SPDF fetcher.
type Options struct {
	BaseURL    string
	ScratchDir string
	Timeout    time.Duration
	UserAgent  string
}

// OMNI downloads OMNI2 hourly-merge CDF files from NASA SPDF.
type OMNI struct {
	opts    Options
	logger  zerolog.Logger
	client  *http.Client
	baseURL string
}

// NewOMNI constructs an SPDF fetcher.
func NewOMNI(opts Options, logger zerolog.Logger) *OMNI {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	baseURL := strings.TrimRight(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = "https://spdf.gsfc.nasa.gov/pub/data"
	}

	return &OMNI{
		opts:    opts,
		logger:  logger.With().Str("component", "omni_fetcher").Logger(),
		client:  &http.Client{Timeout: timeout},
		baseURL: baseURL,
	}
}

// RemotePath derives the data-provider path for the file covering the given
// date: a year directory and a half-year filename (January for dates before
// July, July otherwise).
func RemotePath(date time.Time) string {
	month := "01"
	if date.Month() >= time.July {
		month = "07"
	}
	return fmt.Sprintf("omni/omni_cdaweb/hourly/%d/omni2_h0_mrg1hr_%d%s01_v01.cdf", date.Year(), date.Year(), month)
}

// Fetch downloads the file covering date into the scratch directory and
// returns its local path. An already-downloaded file is reused unless force
// is set.
func (f *OMNI) Fetch(ctx context.Context, date time.Time, force bool) (string, error) {
	scratch := f.opts.ScratchDir
	if scratch == "" {
		scratch = filepath.Join(os.TempDir(), "cdf-compare")
	}
	if err := os.MkdirAll(scratch, 0o755); err != nil {
		return "", fmt.Errorf("create scratch dir: %w", err)
	}

	remote := RemotePath(date)
	local := filepath.Join(scratch, path.Base(remote))

	if !force {
		if st, err := os.Stat(local); err == nil && st.Size() > 0 {
			f.logger.Debug().Str("path", local).Msg("reusing cached download")
			return local, nil
		}
	}

	url := f.baseURL + "/" + remote
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	if ua := strings.TrimSpace(f.opts.UserAgent); ua != "" {
		req.Header.Set("User-Agent", ua)
	} else {
		req.Header.Set("User-Agent", "cdf-compare/1.0")
	}

	f.logger.Info().Str("url", url).Msg("downloading")
	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", httpError(resp.StatusCode, resp.Body)
	}

	tmp := local + ".part"
	out, err := os.Create(tmp)
	if err != nil {
		return "", err
	}

	n, err := io.Copy(out, resp.Body)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(tmp)
		return "", fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, local); err != nil {
		os.Remove(tmp)
		return "", err
	}

	f.logger.Info().Str("path", local).Int64("bytes", n).Msg("download complete")
	return local, nil
}

func httpError(status int, body io.Reader) error {
	excerpt, _ := io.ReadAll(io.LimitReader(body, 256))
	if trimmed := strings.TrimSpace(string(excerpt)); trimmed != "" {
		return fmt.Errorf("spdf responded %d: %s", status, trimmed)
	}
	return fmt.Errorf("spdf responded %d", status)
}

var _ DataFetcher = (*OMNI)(nil)
