package handlers

import (
	"fmt"
	"math/rand/v2"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/shvendra/bookmyworker-back/config"
	"github.com/shvendra/bookmyworker-back/database"
)

const otpTTL = 5 * time.Minute

// NotificationSender delivers an OTP to a phone number. Actual SMS delivery
// is an external concern; the default implementation only logs.
type NotificationSender interface {
	SendOTP(phone, code string) error
}

type logSender struct {
	log *logrus.Logger
}

func (s *logSender) SendOTP(phone, code string) error {
	s.log.WithFields(logrus.Fields{"phone": phone}).Info("otp generated")
	return nil
}

type OTPHandler struct {
	sender NotificationSender
}

func NewOTPHandler(sender NotificationSender) *OTPHandler {
	if sender == nil {
		sender = &logSender{log: config.GetLogger()}
	}
	return &OTPHandler{sender: sender}
}

type otpRequestReq struct {
	Phone string `json:"phone" validate:"required"`
}

type otpVerifyReq struct {
	Phone string `json:"phone" validate:"required"`
	OTP   string `json:"otp" validate:"required"`
}

// POST /api/v1/otp/request
func (h *OTPHandler) Request(c echo.Context) error {
	var req otpRequestReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"success": false, "message": "Phone is required"})
	}

	phone := strings.TrimSpace(req.Phone)
	code := fmt.Sprintf("%06d", rand.IntN(1000000))
	if err := database.SetRedisValue("otp:"+phone, code, otpTTL); err != nil {
		config.LogError(config.GetLogger(), "handlers", "Request", "store otp", phone, err)
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "STORE_UNAVAILABLE"})
	}
	if err := h.sender.SendOTP(phone, code); err != nil {
		config.LogError(config.GetLogger(), "handlers", "Request", "send otp", phone, err)
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "OTP_SEND_FAILED"})
	}
	return c.JSON(http.StatusOK, map[string]any{"success": true, "message": "OTP sent"})
}

// POST /api/v1/otp/verify
func (h *OTPHandler) Verify(c echo.Context) error {
	var req otpVerifyReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"success": false, "message": "Phone and otp are required"})
	}

	phone := strings.TrimSpace(req.Phone)
	want, found, err := database.GetRedisValue("otp:" + phone)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "STORE_UNAVAILABLE"})
	}
	if !found || want != strings.TrimSpace(req.OTP) {
		return c.JSON(http.StatusBadRequest, map[string]any{"success": false, "message": "Invalid or expired OTP"})
	}
	_ = database.DeleteRedisKey("otp:" + phone)
	return c.JSON(http.StatusOK, map[string]any{"success": true, "message": "OTP verified"})
}
