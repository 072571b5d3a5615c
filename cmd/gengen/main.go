// Command gengen specializes a template package written against the
// placeholder types in package generic.
//
// Every .go file of the template package, tests included, is rewritten with
// the given concrete types and written to the output directory:
//
//	gengen -o ./intchain -p intchain ./chain int
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"os/exec"
	"path"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/joeshaw/linkedlist/genlib"
	"golang.org/x/tools/imports"
)

func main() {
	var (
		outdir     = flag.String("o", ".", "output directory")
		pkgName    = flag.String("p", "", "package name of the generated files (default: keep the template's)")
		fixImports = flag.Bool("i", true, "run go files through `goimports`")
	)
	flag.Parse()

	if flag.NArg() < 2 {
		cmd := os.Args[0]
		fmt.Fprintf(os.Stderr, "usage: %s [-o <output_dir>] [-p <package>] <package> <replacement types...>\n", cmd)
		fmt.Fprintf(os.Stderr, "example: %s -o ./intchain -p intchain ./chain int\n", cmd)
		os.Exit(1)
	}

	pkgpath, err := findPkgPath(flag.Arg(0))
	if err != nil {
		die(err)
	}

	// list the source files
	sourcefiles, err := filepath.Glob(path.Join(pkgpath, "*.go"))
	if err != nil {
		die(err)
	}
	if len(sourcefiles) == 0 {
		die(fmt.Errorf("no go files in %s", pkgpath))
	}

	tdir, err := ioutil.TempDir("", "gengen")
	if err != nil {
		die(err)
	}
	defer os.RemoveAll(tdir)

	// convert all source files into the tmp dir
	for _, sourcePath := range sourcefiles {
		destPath := path.Join(tdir, path.Base(sourcePath))
		err := convertFile(destPath, sourcePath, *pkgName, *fixImports, flag.Args()[1:]...)
		if err != nil {
			os.RemoveAll(tdir)
			die(fmt.Errorf("%s: %v", sourcePath, err))
		}
	}

	// move the converted files into our output dir
	if err := replaceFiles(tdir, *outdir); err != nil {
		os.RemoveAll(tdir)
		die(err)
	}
}

func convertFile(destPath, sourcePath, pkgName string, fixImports bool, types ...string) error {
	buf, err := genlib.Generate(sourcePath, pkgName, types...)
	if err != nil {
		return err
	}

	if fixImports {
		buf, err = imports.Process(path.Base(sourcePath), buf, &imports.Options{
			TabWidth:  8,
			TabIndent: true,
			Comments:  true,
			Fragment:  true,
			AllErrors: false,
		})
		if err != nil {
			return err
		}
	}

	return ioutil.WriteFile(destPath, buf, 0644)
}

func replaceFiles(sourceDir, destDir string) error {
	sources, err := filepath.Glob(path.Join(sourceDir, "*.go"))
	if err != nil {
		return err
	}

	if err := os.MkdirAll(destDir, 0755); err != nil {
		return err
	}

	for _, source := range sources {
		dest := path.Join(destDir, path.Base(source))

		// attempt a simple rename
		err := os.Rename(source, dest)
		if err == nil {
			continue
		}

		// /tmp is often a ramdisk so check for EXDEV
		linkerr, ok := err.(*os.LinkError)
		if !ok {
			return err
		}
		if errno, ok := linkerr.Err.(syscall.Errno); !ok || errno != syscall.EXDEV {
			return err
		}

		// have to copy the bytes explicitly
		if err = copyBytes(source, dest); err != nil {
			return err
		}
	}
	return nil
}

func copyBytes(source, dest string) error {
	sfile, err := os.Open(source)
	if err != nil {
		return err
	}
	defer sfile.Close()

	dfile, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer dfile.Close()

	_, err = io.Copy(dfile, sfile)
	return err
}

// findPkgPath resolves a template given either as a directory or as an
// import path known to the go tool.
func findPkgPath(name string) (string, error) {
	if fi, err := os.Stat(name); err == nil && fi.IsDir() {
		return name, nil
	}

	var stderr bytes.Buffer
	cmd := exec.Command("go", "list", "-f", "{{.Dir}}", name)
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("couldn't find %s: %s", name, strings.TrimSpace(stderr.String()))
	}
	return strings.TrimSpace(string(out)), nil
}

func die(err error) {
	fmt.Fprintf(os.Stderr, "ERROR: %s\n", err)
	os.Exit(1)
}
