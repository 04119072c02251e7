/*
 * files.go, part of stoich.
 *
 *
 * Copyright 2024 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 */

package stoich

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

//compression returns the compression format for a file name, deduced from
//its extension: "gz", "zst" or "" for plain JSON. Unknown extensions are
//logged and treated as plain JSON.
func compression(fname string) string {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(fname), "."))
	switch ext {
	case "gz", "gzip":
		return "gz"
	case "zst", "zstd":
		return "zst"
	case "json":
		return ""
	default:
		log.Printf("Extension %q not recognized. %s will be assumed to be a plain JSON file", ext, fname)
		return ""
	}
}

//prepSource returns a reader that decompresses, if needed, the data read from r,
//and a function to release the resources of the decompressor.
func prepSource(r io.Reader, format string) (io.Reader, func(), error) {
	reader := bufio.NewReader(r)
	switch format {
	case "gz":
		zr, err := gzip.NewReader(reader)
		if err != nil {
			return nil, nil, err
		}
		return zr, func() { zr.Close() }, nil
	case "zst":
		zr, err := zstd.NewReader(reader)
		if err != nil {
			return nil, nil, err
		}
		return zr, zr.Close, nil
	case "":
		return reader, func() {}, nil
	}
	return nil, nil, fmt.Errorf("%s: %s", UnsupportedFormat, format)
}

// TableFileRead reads a periodic table from the JSON file fname. Files ending in .gz
// are gzip-decompressed and files ending in .zst are zstd-decompressed first.
func TableFileRead(fname string) (*Table, error) {
	fhandle, err := os.Open(fname)
	if err != nil {
		return nil, newReferenceError(UnableToOpen, fname, err, "TableFileRead")
	}
	defer fhandle.Close()
	reader, done, err := prepSource(fhandle, compression(fname))
	if err != nil {
		return nil, newReferenceError(CorruptData, fname, err, "TableFileRead")
	}
	defer done()
	T, err := ReadTable(reader)
	if err != nil {
		if rerr, ok := err.(*ReferenceError); ok {
			rerr.filename = fname
		}
		return nil, errDecorate(err, "TableFileRead")
	}
	return T, nil
}

//prepTarget is the writing counterpart of prepSource.
func prepTarget(w io.Writer, format string) (io.WriteCloser, error) {
	switch format {
	case "gz":
		return gzip.NewWriterLevel(w, gzip.BestCompression)
	case "zst":
		return zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	case "":
		return nopWriteCloser{w}, nil
	}
	return nil, fmt.Errorf("%s: %s", UnsupportedFormat, format)
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

// TableFileWrite writes T to the file fname, compressing it according to the
// file extension, in the same way TableFileRead decompresses it.
func TableFileWrite(fname string, T *Table) error {
	fhandle, err := os.Create(fname)
	if err != nil {
		return newReferenceError(UnableToCreate, fname, err, "TableFileWrite")
	}
	defer fhandle.Close()
	buf := bufio.NewWriter(fhandle)
	w, err := prepTarget(buf, compression(fname))
	if err != nil {
		return newReferenceError(UnableToEncode, fname, err, "TableFileWrite")
	}
	if err := T.WriteTable(w); err != nil {
		w.Close()
		return errDecorate(err, "TableFileWrite")
	}
	if err := w.Close(); err != nil {
		return newReferenceError(UnableToEncode, fname, err, "TableFileWrite")
	}
	if err := buf.Flush(); err != nil {
		return newReferenceError(UnableToEncode, fname, err, "TableFileWrite")
	}
	return nil
}
