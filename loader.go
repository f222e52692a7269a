package main

import (
	"bufio"
	"io"

	"github.com/inhies/go-bytesize"
	"github.com/pkg/errors"
	"github.com/shivanshs9/wordcheck/set"
	"github.com/sirupsen/logrus"
)

var ErrWordListTooLarge = errors.New("word list too large")

var loaderLog = logrus.WithField("module", "loader")

// LoadWords adds every whitespace separated token of r to words, normalized
// the same way CheckText normalizes text, and returns how many words were
// read, duplicates included. Tokens without letters or digits are skipped.
func LoadWords(r io.Reader, words set.Set[string]) (int, error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)

	read := 0
	for scanner.Scan() {
		word := normalizeWord(scanner.Text())
		if word == "" {
			continue
		}
		words.Add(word)
		read++
	}

	if err := scanner.Err(); err != nil {
		return read, errors.Wrap(err, "scan words")
	}
	return read, nil
}

// LoadWordFile loads the word list at path into words. Files larger than
// maxSize are rejected before anything is read; maxSize 0 means no limit.
func LoadWordFile(path string, words set.Set[string], maxSize bytesize.ByteSize) (int, error) {
	reader, err := ReadFromFile(path)
	if err != nil {
		return 0, err
	}
	defer reader.Close()

	if maxSize > 0 && reader.Size > maxSize {
		return 0, errors.Wrapf(ErrWordListTooLarge, "%s is %s, limit %s", path, reader.Size, maxSize)
	}

	log := loaderLog.WithField("file", reader.fileName)
	log.Infof("Loading %s of words", reader.Size)

	read, err := LoadWords(reader, words)
	if err != nil {
		return read, errors.Wrapf(err, "load %s", path)
	}

	log.WithFields(logrus.Fields{
		"read":     read,
		"distinct": words.Size(),
	}).Info("Word list loaded")
	return read, nil
}
