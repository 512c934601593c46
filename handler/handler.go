package handler

import (
	"github.com/sirupsen/logrus"

	"simgate/logging"
)

var log *logrus.Logger

func init() {
	log = logging.GetLogger()
}
