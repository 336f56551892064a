package configs

import (
	"testing"

	"acaodocente/utils"
)

func TestMain(m *testing.M) {
	utils.InitLogger()
	m.Run()
}
