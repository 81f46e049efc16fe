// Package ioutils provides file system and image processing utilities.
//
// This package contains functions for:
//   - File writing
//   - Directory creation, with "already exists" reported instead of failing
//   - Template loading, resizing and PNG encoding
//
// # File Operations
//
//	// Write data to file
//	err := ioutils.WriteFile(ctx, "out/Mehr/۰۱.png", data)
//
//	// Ensure directory exists
//	err := ioutils.EnsureDir("/path/to/new/directory")
//
//	// Create one folder, learning whether it was already there
//	created, err := ioutils.EnsureFolder("out/Mehr")
//
// # Image Processing
//
// The ImageService handles template and sticker images:
//
//	svc := ioutils.NewImageService()
//
//	// Load an editable copy of a template
//	canvas, _ := svc.Load(ctx, "templates/paeiz.png")
//
//	// Resize to the output size and encode
//	data, _ := svc.EncodePNG(ctx, svc.Resize(ctx, canvas, 507, 512))
package ioutils
