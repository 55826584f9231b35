package report

import (
	"compress/gzip"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

var mu sync.Mutex

var istZone = time.FixedZone("IST", 19800)

const latestFilename = "latest_analysis.json"

// Save writes the run to a timestamped JSON file under dir and refreshes
// latest_analysis.json alongside it. Returns the timestamped path.
func Save(res *Result, dir string) (string, error) {
	mu.Lock()
	defer mu.Unlock()

	if dir == "" {
		dir = "output"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	stamp := res.GeneratedAt.In(istZone).Format("20060102_150405")
	path := filepath.Join(dir, "news_analysis_"+stamp+".json")

	if err := writeJSON(path, res); err != nil {
		return "", err
	}
	if err := writeJSON(filepath.Join(dir, latestFilename), res); err != nil {
		return "", err
	}
	return path, nil
}

func writeJSON(path string, res *Result) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}

// CompressOlder gzip-packs result files older than retentionDays.
// latest_analysis.json is always left readable.
func CompressOlder(dir string, retentionDays int) error {
	if retentionDays <= 0 {
		return nil
	}
	mu.Lock()
	defer mu.Unlock()

	cutoff := time.Now().AddDate(0, 0, -retentionDays)
	return filepath.WalkDir(dir, func(p string, d os.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if filepath.Ext(p) != ".json" || filepath.Base(p) == latestFilename {
			return nil
		}
		info, er := os.Stat(p)
		if er != nil {
			return nil
		}
		if info.ModTime().Before(cutoff) {
			compressFile(p)
		}
		return nil
	})
}

func compressFile(p string) {
	gz := p + ".gz"
	// if already gz exists, remove original .json
	if _, err := os.Stat(gz); err == nil {
		_ = os.Remove(p)
		return
	}

	in, err := os.Open(p)
	if err != nil {
		return
	}
	defer in.Close()

	out, err := os.OpenFile(gz, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return
	}
	gw := gzip.NewWriter(out)
	if _, err := io.Copy(gw, in); err == nil {
		_ = gw.Close()
		_ = out.Close()
		_ = os.Remove(p)
	} else {
		_ = gw.Close()
		_ = out.Close()
	}
}
