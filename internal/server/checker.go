package server

import (
	"context"
	"time"

	"carscope/internal/misc"
)

func (s Server) CheckAlertsInInterval(ctx context.Context, ticker *time.Ticker) {
	for range ticker.C {
		s.checkAlerts(ctx)
	}
}

func (s Server) checkAlerts(ctx context.Context) {
	s.Logger.Info("checkAlerts: Starting to check all active DiscountAlerts")
	as, err := s.DB.AlertsFindAllActive(ctx)
	if err != nil {
		s.Logger.Errorf("checkAlerts: Error getting active DiscountAlerts from DB, err: %v", err)
		return
	}
	s.Logger.Infof("checkAlerts: Retrieved %d active DiscountAlert(s) from DB", len(as))

	ns := s.AlertChecker.Evaluate(as, time.Now())
	if len(ns) == 0 {
		s.Logger.Info("checkAlerts: No DiscountAlerts triggered this round")
		return
	}

	inserted := 0
	for _, n := range ns {
		s.Logger.Debugf("checkAlerts: Inserting Notification for UserID: %s, message: %s",
			n.UserID.Hex(), misc.StringLimit(n.Message, 60))
		if err = s.DB.NotificationInsert(ctx, n); err != nil {
			s.Logger.Errorf("checkAlerts: Error inserting Notification for UserID: %s, err: %v",
				n.UserID.Hex(), err)
			continue
		}
		inserted++
	}
	s.Logger.Infof("checkAlerts: Finished checking DiscountAlerts, %d Notification(s) created", inserted)
}
