// Command ckdcheck mengirim data lab ke layanan prediksi CKD dari terminal.
package main

import (
	"os"

	log "github.com/sirupsen/logrus"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.WithError(err).Debug("ckdcheck failed")
		os.Exit(1)
	}
}
