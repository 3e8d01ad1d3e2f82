// Package selfupdate replaces the running binary with the latest GitHub
// release build for this platform.
package selfupdate

import (
	"archive/tar"
	"bufio"
	"compress/gzip"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"runtime"
	"strings"

	"github.com/schollz/progressbar/v3"
	"golang.org/x/mod/semver"
)

const releaseURL = "https://api.github.com/repos/jmuelbert/checkconnect/releases/latest"

var assetName = fmt.Sprintf("checkconnect_%s_%s.tar.gz", runtime.GOOS, runtime.GOARCH)

type release struct {
	TagName string `json:"tag_name"`
	Assets  []struct {
		Name        string `json:"name"`
		DownloadURL string `json:"browser_download_url"`
		Digest      string `json:"digest"`
	} `json:"assets"`
}

// Run checks for a newer release and installs it unless isDryRun is set.
func Run(currentVersion string, isDryRun, isForce bool) error {
	if !strings.HasPrefix(currentVersion, "v") {
		currentVersion = "v" + currentVersion
	}

	fmt.Println("Checking for new versions...")
	rel, err := latestRelease()
	if err != nil {
		return fmt.Errorf("could not get latest release info: %w", err)
	}

	if !semver.IsValid(currentVersion) || !semver.IsValid(rel.TagName) {
		return fmt.Errorf("invalid version format. Current: %s, Latest: %s", currentVersion, rel.TagName)
	}

	if semver.Compare(currentVersion, rel.TagName) >= 0 {
		fmt.Printf("Current version (%s) is already the latest.\n", currentVersion)
		return nil
	}

	fmt.Printf("A new version %s is available! Current version is %s\n", rel.TagName, currentVersion)

	assetURL, expectedChecksum, err := findAsset(rel)
	if err != nil {
		return err
	}

	if isDryRun {
		fmt.Printf("Dry run: would download %s from %s\n", assetName, assetURL)
		return nil
	}

	if !isForce && !confirm(fmt.Sprintf("Replace the current binary with %s?", rel.TagName)) {
		fmt.Println("Update cancelled.")
		return nil
	}

	fmt.Printf("Downloading new binary: %s\n", assetName)
	archivePath, checksum, err := download(assetURL)
	if err != nil {
		return fmt.Errorf("failed to download binary: %w", err)
	}
	defer os.Remove(archivePath)

	if checksum != expectedChecksum {
		return fmt.Errorf("checksum mismatch: expected %s, got %s", expectedChecksum, checksum)
	}

	if err := installFromArchive(archivePath); err != nil {
		return err
	}

	fmt.Printf("Successfully updated to %s\n", rel.TagName)
	return nil
}

func latestRelease() (*release, error) {
	resp, err := http.Get(releaseURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d from release API", resp.StatusCode)
	}

	var rel release
	if err := json.NewDecoder(resp.Body).Decode(&rel); err != nil {
		return nil, err
	}

	return &rel, nil
}

func findAsset(rel *release) (url, checksum string, err error) {
	for _, asset := range rel.Assets {
		if asset.Name != assetName {
			continue
		}
		url = asset.DownloadURL
		checksum = strings.TrimPrefix(asset.Digest, "sha256:")
	}

	if url == "" {
		return "", "", fmt.Errorf("could not find asset for %s in release %s", assetName, rel.TagName)
	}
	if checksum == "" {
		return "", "", fmt.Errorf("could not find checksum for %s in release %s", assetName, rel.TagName)
	}

	return url, checksum, nil
}

func download(url string) (path, checksum string, err error) {
	resp, err := http.Get(url)
	if err != nil {
		return "", "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", "", fmt.Errorf("unexpected status %d while downloading", resp.StatusCode)
	}

	tmpFile, err := os.CreateTemp("", "checkconnect-update-*.tar.gz")
	if err != nil {
		return "", "", err
	}
	defer tmpFile.Close()

	bar := progressbar.DefaultBytes(resp.ContentLength, "downloading")
	hasher := sha256.New()

	if _, err := io.Copy(io.MultiWriter(tmpFile, hasher, bar), resp.Body); err != nil {
		os.Remove(tmpFile.Name())
		return "", "", err
	}

	return tmpFile.Name(), hex.EncodeToString(hasher.Sum(nil)), nil
}

func installFromArchive(archivePath string) error {
	archive, err := os.Open(archivePath)
	if err != nil {
		return err
	}
	defer archive.Close()

	gz, err := gzip.NewReader(archive)
	if err != nil {
		return fmt.Errorf("failed to open archive: %w", err)
	}
	defer gz.Close()

	tr := tar.NewReader(gz)
	for {
		header, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}

		if header.Typeflag == tar.TypeReg && header.Name == "checkconnect" {
			return replaceBinary(tr)
		}
	}

	return errors.New("binary not found in release archive")
}

func replaceBinary(src io.Reader) error {
	executable, err := os.Executable()
	if err != nil {
		return err
	}

	tmpPath := executable + ".new"
	out, err := os.OpenFile(tmpPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0755)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, src); err != nil {
		out.Close()
		os.Remove(tmpPath)
		return err
	}
	out.Close()

	return os.Rename(tmpPath, executable)
}

func confirm(prompt string) bool {
	fmt.Printf("%s [y/N]: ", prompt)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return false
	}

	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
