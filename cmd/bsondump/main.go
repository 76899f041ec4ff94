// Command bsondump reads a stream of BSON documents from a file (or stdin
// when no file is given) and prints each document in a readable form.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/ikmak/bson"
)

func main() {
	log := logrus.New()
	log.Out = os.Stderr

	var in io.Reader = os.Stdin
	if len(os.Args) > 1 && os.Args[1] != "-" {
		f, err := os.Open(os.Args[1])
		if err != nil {
			log.WithError(err).Fatal("cannot open input file")
		}
		defer f.Close()
		in = f
	}

	var count int
	for {
		doc, _, err := bson.NewFromIOReader(in)
		if err == io.EOF {
			break
		}
		if err != nil {
			log.WithError(err).WithField("documents", count).Fatal("cannot decode document")
		}

		fmt.Println(doc)
		count++
	}

	log.WithField("documents", count).Info("done")
}
