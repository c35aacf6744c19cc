package service

import (
	"fmt"
	"time"

	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"

	"kelasku_backend/internals/features/payment/purchases/model"
)

// Prefix order id menentukan webhook dispatch: sesi satuan vs paket.
const (
	OrderIDPrefixSession  = "KLS-SESI-"
	OrderIDPrefixSchedule = "KLS-PAKET-"
)

var SnapClient snap.Client

// Panggil saat bootstrap app (sandbox)
func InitMidtrans(serverKey string) {
	SnapClient.New(serverKey, midtrans.Sandbox)
}

func NewSessionOrderID() string {
	return fmt.Sprintf("%s%d", OrderIDPrefixSession, time.Now().UnixNano())
}

func NewScheduleOrderID() string {
	return fmt.Sprintf("%s%d", OrderIDPrefixSchedule, time.Now().UnixNano())
}

// Buat Snap token + redirect_url untuk pembelian sesi satuan
func GenerateSessionSnapToken(p model.SessionPurchaseModel, itemName string) (string, string, error) {
	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  p.SessionPurchaseOrderID,
			GrossAmt: p.SessionPurchaseAmount,
		},
		Items: &[]midtrans.ItemDetails{{
			ID:    p.SessionPurchaseSessionID.String(),
			Name:  itemName,
			Price: p.SessionPurchaseAmount,
			Qty:   1,
		}},
	}

	resp, err := SnapClient.CreateTransaction(req)
	if err != nil {
		return "", "", err
	}
	return resp.Token, resp.RedirectURL, nil
}

// Buat Snap token + redirect_url untuk pembelian paket
func GenerateScheduleSnapToken(e model.ScheduleEnrollmentModel, itemName string) (string, string, error) {
	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  e.ScheduleEnrollmentOrderID,
			GrossAmt: e.ScheduleEnrollmentAmount,
		},
		Items: &[]midtrans.ItemDetails{{
			ID:    e.ScheduleEnrollmentScheduleID.String(),
			Name:  itemName,
			Price: e.ScheduleEnrollmentAmount,
			Qty:   1,
		}},
	}

	resp, err := SnapClient.CreateTransaction(req)
	if err != nil {
		return "", "", err
	}
	return resp.Token, resp.RedirectURL, nil
}
