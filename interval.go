package rx

import "time"

// Interval emits 0, 1, 2, ... every period until disposed. The ticker
// goroutine is the subscription's single writer.
func Interval(period time.Duration) Observable[int] {
	return Create(func(observer Observer[int]) Disposable {
		ticker := time.NewTicker(period)
		stop := make(chan struct{})
		go func() {
			defer ticker.Stop()
			for i := 0; ; i++ {
				select {
				case <-ticker.C:
					observer.OnNext(i)
				case <-stop:
					return
				}
			}
		}()
		return NewDisposable(func() { close(stop) })
	})
}

// Timer emits a single 0 after delay, then completes.
func Timer(delay time.Duration) Observable[int] {
	return Create(func(observer Observer[int]) Disposable {
		timer := time.NewTimer(delay)
		stop := make(chan struct{})
		go func() {
			defer timer.Stop()
			select {
			case <-timer.C:
				observer.OnNext(0)
				observer.OnCompleted()
			case <-stop:
			}
		}()
		return NewDisposable(func() { close(stop) })
	})
}
