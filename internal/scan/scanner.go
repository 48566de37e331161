package scan

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const DefaultExt = ".txt"

type FileInfo struct {
	Path  string
	Mtime int64
	Size  int64
}

// ScanDir walks root and returns every file with the transcript extension,
// sorted by path. Hidden directories are skipped. A root that is itself a
// file is returned as the only entry.
func ScanDir(root, ext string) ([]FileInfo, error) {
	if ext == "" {
		ext = DefaultExt
	}

	info, err := os.Stat(root)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []FileInfo{newFileInfo(root, info)}, nil
	}

	var files []FileInfo
	err = filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil // skip unreadable dirs
		}
		if info.IsDir() {
			if path != root && strings.HasPrefix(info.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.EqualFold(filepath.Ext(path), ext) {
			return nil
		}
		files = append(files, newFileInfo(path, info))
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })
	return files, nil
}

func newFileInfo(path string, info os.FileInfo) FileInfo {
	return FileInfo{
		Path:  path,
		Mtime: info.ModTime().Unix(),
		Size:  info.Size(),
	}
}
