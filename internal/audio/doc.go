// Package audio writes sound descriptor metadata into downloaded audio
// files.
//
// # ID3 Tagging
//
// Use the Tagger to write descriptor fields into installed MP3s:
//
//	tagger := audio.NewTagger(audio.DefaultTagConfig())
//	err := tagger.SaveTags("/home/user/KeyCl/Quork.mp3", desc)
//
// The tagger maps descriptor fields onto ID3 frames:
//   - Title -> track title
//   - Author -> artist
//   - Description -> comment
//   - Tags -> genre
//
// Non-MP3 audio (.wav, .ogg) is skipped: those containers have no ID3
// block.
package audio
