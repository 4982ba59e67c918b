// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"go.uber.org/mock/gomock"

	battlermock "github.com/KirkDiggler/rpg-realtime/internal/combat/battler/mock"
)

// ExpectAnyPresentation lets a presenter mock accept every cue any number of times
func ExpectAnyPresentation(presenter *battlermock.MockPresenter) {
	presenter.EXPECT().PlayAnimation(gomock.Any(), gomock.Any()).AnyTimes()
	presenter.EXPECT().ShowPopup(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	presenter.EXPECT().PlayPose(gomock.Any(), gomock.Any()).AnyTimes()
	presenter.EXPECT().ShowNotice(gomock.Any(), gomock.Any()).AnyTimes()
}
