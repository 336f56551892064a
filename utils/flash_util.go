package utils

import (
	"github.com/gofiber/fiber/v2"
)

const (
	FlashSuccessKey = "flash_success"
	FlashErrorKey   = "flash_error"
	FlashWarningKey = "flash_warning"
)

type FlashData struct {
	Success string
	Error   string
	Warning string
}

func SetFlashMessage(c *fiber.Ctx, key, message string) error {
	sess, err := SessionStart(c)
	if err != nil {
		return err
	}
	sess.Set(key, message)
	return sess.Save()
}

// GetFlashMessages consumes the pending flash messages: they are removed
// from the session as they are read.
func GetFlashMessages(c *fiber.Ctx) (FlashData, error) {
	var data FlashData

	sess, err := SessionStart(c)
	if err != nil {
		return data, err
	}

	if msg, ok := sess.Get(FlashSuccessKey).(string); ok {
		data.Success = msg
		sess.Delete(FlashSuccessKey)
	}
	if msg, ok := sess.Get(FlashErrorKey).(string); ok {
		data.Error = msg
		sess.Delete(FlashErrorKey)
	}
	if msg, ok := sess.Get(FlashWarningKey).(string); ok {
		data.Warning = msg
		sess.Delete(FlashWarningKey)
	}

	if data.Success != "" || data.Error != "" || data.Warning != "" {
		if err := sess.Save(); err != nil {
			return data, err
		}
	}

	return data, nil
}
