package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

/* =========================================================
   Razorpay callback signature
   HMAC-SHA256(secret, "<order_id>|<payment_id>") hex digest
========================================================= */

func BuildSignaturePayload(orderID, paymentID string) string {
	return orderID + "|" + paymentID
}

func SignaturePayloadDigest(secret, orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(BuildSignaturePayload(orderID, paymentID)))
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifySignature checks the supplied hex signature in constant time.
func VerifySignature(secret, orderID, paymentID, signature string) bool {
	expected := SignaturePayloadDigest(secret, orderID, paymentID)
	return hmac.Equal([]byte(expected), []byte(signature))
}
