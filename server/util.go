package server

import "os"

func fileExists(filename string) bool {
	fi, err := os.Lstat(filename)
	return err == nil && !fi.IsDir()
}

func dirExists(dir string) bool {
	fi, err := os.Lstat(dir)
	return err == nil && fi.IsDir()
}
