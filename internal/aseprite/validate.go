package aseprite

// validateFrame rejects frames that cannot be drawn as a full, untrimmed bounding box.
// Checks run in a fixed order so the first failing rule is the one reported.
func validateFrame(frame *Frame) error {
	if frame.Rotated {
		return &UnsupportedError{Feature: FeatureFrameRotation}
	}
	if frame.Trimmed || frame.SourceSize != frame.Frame.Size() {
		return &UnsupportedError{Feature: FeatureSpriteTrimming}
	}
	if frame.Frame.Size() != frame.SpriteSourceSize.Size() {
		return &UnsupportedError{Feature: FeatureCelTrimming}
	}
	return nil
}
