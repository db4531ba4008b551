package orchestration_test

import (
	"context"
	"io"
	"testing"

	"github.com/golang/mock/gomock"

	"github.com/agbru/fibgen/internal/fibonacci"
	"github.com/agbru/fibgen/internal/orchestration"
	"github.com/agbru/fibgen/internal/orchestration/mocks"
)

func TestRunDemo_PresenterCallOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	presenter := mocks.NewMockValuePresenter(ctrl)
	out := io.Discard

	expect := func(lane, index int, text string) *gomock.Call {
		return presenter.EXPECT().
			PresentTerm(orchestration.Term{Lane: lane, Index: index, Text: text}, out).
			Times(1)
	}
	gomock.InOrder(
		expect(0, 1, "1"),
		expect(0, 2, "1"),
		expect(0, 3, "2"),
		expect(1, 1, "1"),
		expect(0, 4, "3"),
		expect(1, 2, "1"),
		expect(0, 5, "5"),
		expect(1, 3, "2"),
	)

	factory := func() orchestration.Source[int] {
		return orchestration.Infallible[int](fibonacci.New[int]())
	}
	opts := orchestration.DemoOptions[int]{Warmup: 2, Iterations: 3}
	if _, err := orchestration.RunDemo(context.Background(), factory, opts, presenter, out); err != nil {
		t.Fatalf("RunDemo() error = %v", err)
	}
}

func TestRunDemo_ObserverCallOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	observer := mocks.NewMockTermObserver(ctrl)
	gomock.InOrder(
		observer.EXPECT().OnGeneratorCreated(0),
		observer.EXPECT().OnTerm(0, 1),
		observer.EXPECT().OnTerm(0, 2),
		observer.EXPECT().OnGeneratorCreated(1),
		observer.EXPECT().OnTerm(0, 3),
		observer.EXPECT().OnTerm(1, 1),
	)
	observer.EXPECT().OnVerified().Times(0)

	factory := func() orchestration.Source[int64] {
		return orchestration.Infallible[int64](fibonacci.New[int64]())
	}
	opts := orchestration.DemoOptions[int64]{Warmup: 2, Iterations: 1, Observer: observer}
	presenter := orchestration.ValuePresenterFunc(func(orchestration.Term, io.Writer) {})
	if _, err := orchestration.RunDemo(context.Background(), factory, opts, presenter, io.Discard); err != nil {
		t.Fatalf("RunDemo() error = %v", err)
	}
}
