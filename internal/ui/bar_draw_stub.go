//go:build !ebiten

package ui

type barView struct{}

// Render is a no-op in the headless build.
func (b *CultivationBar) Render(any) {}

// UpdateView is a no-op in the headless build.
func (b *CultivationBar) UpdateView() {}
