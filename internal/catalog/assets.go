package catalog

import "strings"

// assetPathFor builds the tree path of the thumbnail owned by project for
// a document at the given version.
func assetPathFor(project, version, filePath string) string {
	return rootSegment + "/" + project + "/" + textSegment + "/" + version + "/" + filePath + assetExt
}

// resolveThumbnail picks a thumbnail for doc from the known-asset set.
// Candidates, in order: the asset co-located with the source file, the
// source project's "latest" copy, then each closure dependency walked
// highest priority first, tried at the document's version before falling
// back to "latest". Returns "" when nothing matches.
func resolveThumbnail(doc Document, closure []string, assets map[string]struct{}) string {
	direct := swapAssetExt(doc.SourcePath)
	if _, ok := assets[direct]; ok {
		return "/" + direct
	}
	if doc.Version != latestVersion {
		owner := doc.SourceProject
		if owner == "" {
			owner = doc.Project
		}
		candidate := assetPathFor(owner, latestVersion, doc.FilePath)
		if _, ok := assets[candidate]; ok {
			return "/" + candidate
		}
	}
	for i := len(closure) - 1; i >= 0; i-- {
		dep := closure[i]
		candidate := assetPathFor(dep, doc.Version, doc.FilePath)
		if _, ok := assets[candidate]; ok {
			return "/" + candidate
		}
		if doc.Version != latestVersion {
			candidate = assetPathFor(dep, latestVersion, doc.FilePath)
			if _, ok := assets[candidate]; ok {
				return "/" + candidate
			}
		}
	}
	return ""
}

func swapAssetExt(sourcePath string) string {
	if strings.HasSuffix(sourcePath, docExt) {
		return strings.TrimSuffix(sourcePath, docExt) + assetExt
	}
	return sourcePath + assetExt
}
