// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/cybrota/bstree/bst"
	"github.com/mattn/go-shellwords"
	"github.com/pkg/errors"
	"github.com/schollz/progressbar/v3"
)

const maxValuesLineSize = 16 * 1024 * 1024

// parseValues turns arguments such as `15 6 18` or `"15, 6" 18` into integers.
// Each argument is split shell-style, then every word on commas and spaces.
func parseValues(args []string) ([]int, error) {
	var values []int
	for _, arg := range args {
		words, err := shellwords.Parse(arg)
		if err != nil {
			return nil, errors.Wrapf(err, "unable to split %q", arg)
		}
		for _, word := range words {
			for _, field := range strings.FieldsFunc(word, isValueSeparator) {
				v, err := strconv.Atoi(field)
				if err != nil {
					return nil, errors.Wrapf(err, "invalid value %q", field)
				}
				values = append(values, v)
			}
		}
	}
	return values, nil
}

func isValueSeparator(r rune) bool {
	return r == ',' || unicode.IsSpace(r)
}

// buildTree inserts values in order into a fresh tree
func buildTree(values []int) (*bst.Tree[int], error) {
	tree := bst.New[int]()
	for _, v := range values {
		if err := tree.Insert(v); err != nil {
			return nil, errors.Wrapf(err, "inserting %d", v)
		}
	}
	return tree, nil
}

// readValues scans r line by line, skipping blank lines and '#' comments.
// Consumed bytes are reported to progress.
func readValues(r io.Reader, size int64, progress io.Writer) ([]int, error) {
	bar := progressbar.NewOptions64(size,
		progressbar.OptionSetDescription("🌳 Loading values..."),
		progressbar.OptionSetWriter(progress),
		progressbar.OptionSetWidth(50),
		progressbar.OptionShowBytes(true),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "=",
			SaucerHead:    ">",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
	)

	var values []int
	scanner := bufio.NewScanner(io.TeeReader(r, bar))
	// a single line may hold a whole data set
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, maxValuesLineSize)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lineValues, err := parseValues([]string{line})
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNo)
		}
		values = append(values, lineValues...)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "unable to read values")
	}

	_ = bar.Finish()
	return values, nil
}

// readValuesFile loads values from path, drawing a progress bar on stderr when
// showProgress is set.
func readValuesFile(path string, showProgress bool) ([]int, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Errorf("values file %s not found", path)
		}
		return nil, errors.Wrapf(err, "unable to open %s", path)
	}
	defer file.Close()

	size := int64(-1)
	if stat, err := file.Stat(); err == nil {
		size = stat.Size()
	}

	var progress io.Writer = io.Discard
	if showProgress {
		progress = os.Stderr
	}
	return readValues(file, size, progress)
}
