package main

import (
	"io/fs"
	"net/url"
	"path"
	"strings"

	"go.uber.org/zap"
)

// placeholderImage is shown wherever a media file isn't cached locally.
const placeholderImage = "data:image/png;base64,iVBORw0KGgoAAAANSUhEUgAAADIAAAAyCAYAAAAeP4ixAAAABmJLR0QA/wD/AP+gvaeTAAAACXBIWXMAAAsTAAALEwEAmpwYAAAAB3RJTUUH4QsUETQjvc7YnAAAACZpVFh0Q29tbWVudAAAAAAAQ3JlYXRlZCB3aXRoIEdJTVAgb24gYSBNYWOV5F9bAAADfElEQVRo3u1ZTUhUURg997sPy9TnDxk4IeqkmKghCKLBLNq2MCXQTXsXomFMIdK0EIoIskWLcNVKaFEulBIzxEgQLBRFXZmiaIOkboSe2Lv3tsg3+Hr96Mx7OhNzl/PuvHfPPd/5zvfdy5719Cj8B4Pwn4wkkCSQRAGilIIQ4q9zpJSQUrr6Xc2tF0kpQURgjGF2fh4zc3P4vLyMza0t27xzubkoKy1FoLYW532+yP/iBohhGHjR349P09M/qSaCUs7M/nVzE1vb23g/Po6zOTkItrcjPS0NnPOYvs9i9RGlFJ739eHj1BSI6EghY81va2nBxZKSmJiJidPvpon+wUHMzs1FwgsAGGN/3rkDz6z5T3t7sR4O/1NbnoUWA3AqJQXm/gKsHS7Iz0egrg7lZWXI1PUI6PmFBbwcGMDW9rbjXQ8eP8aznp4T1AhjICIIIVBVWYkbzc1IPX0apmnaQkXjHJXl5ai6dAmvBgbwbmzMwdSHiQlcrqmJSi+uiD0jPR3BtjZkZ2VFwkXTNMdCrQVer6/H6toaFpeWbJqamJxEoK7u+DVCRKiqqMD9UCgSQocRrJQSTQ0NNhBKKSyvrJyM2IkIvry8QwM4yM55ny++nD2alPm3rHbihnjUKiC8seEAl52VlVhFIxFhcGjIxiZjDDXV1VF7ybEz8t008SUcxsy+iR5k6drVq78ta+KOEdM0sbe3h4dPnjieNTU2QggRtX6OjREhBKSUCN69C8ZYZOeJCBeKinAlEIh/sVs7fbOz0waCc46c7Gzcam2N/w7RAtF2546ttOecI1PX0d3VFbUujg2IlBKcc7QGg7Zql3MOPSMD90MhKKVc8RVPgRARbodC4JzbQJxJTcWDe/dcA+GpRqSUeD08jG+GYauphBB41N3tWovrOSNEhDcjI46OsbOjw1Hixy0jUkqsh8OOEkTXdRTk5yfOuZZSCqtraw4gZSUliXVAp5TCzs6Oo5bK1PWY+vIT0Yhpmo6MpGmaK54RN9Vv4gPxoKHyViMAjN1dmx6EEDAMA17dKrHkjVWcDU9LlF9dnYhcd3TPnX1xacl2AEdEKPb7Uez3ewLGUyBvR0cj58La/imjv7AwcYBYYEwhbJlLKpUUezJrudGPaAeuBzTOQR46u+YViGK/39anW78lVPq1Fu0vLExsH/F60cmslQSSBHL08QPK53LVsfanXQAAAABJRU5ErkJggg=="

// Placeholder policy for a single Resolve call
const (
	WithPlaceholder = true
	NoPlaceholder   = false
)

// MediaResolver maps remote media URLs to files cached under a media
// directory. The cache mirrors the URL path: "https://host/a/b.png" is
// cached as "<dir>/a/b.png".
type MediaResolver struct {
	fsys fs.FS  // Rooted at the media directory
	dir  string // Prefix for the paths written into documents
	log  *zap.Logger
}

// NewMediaResolver creates a resolver. fsys is the media directory itself;
// dir is how documents refer to it (relative to the documents).
func NewMediaResolver(fsys fs.FS, dir string, log *zap.Logger) *MediaResolver {
	if log == nil {
		log = zap.NewNop()
	}
	return &MediaResolver{fsys: fsys, dir: dir, log: log}
}

// Resolve returns the local path of primary, or of fallback when primary
// isn't cached. When neither is cached it returns the placeholder image, or
// "" if allowPlaceholder is false.
func (m *MediaResolver) Resolve(primary, fallback string, allowPlaceholder bool) string {
	for _, ref := range []string{primary, fallback} {
		if p, ok := m.local(ref); ok {
			return p
		}
	}

	if m != nil {
		m.log.Debug("media not cached",
			zap.String("url", primary),
			zap.Bool("placeholder", allowPlaceholder))
	}
	if allowPlaceholder {
		return placeholderImage
	}
	return ""
}

// local reports the document path for ref if its file exists in the cache
func (m *MediaResolver) local(ref string) (string, bool) {
	if ref == "" || m == nil || m.fsys == nil {
		return "", false
	}
	u, err := url.Parse(ref)
	if err != nil || u.Path == "" {
		return "", false
	}

	name := strings.TrimPrefix(path.Clean(u.Path), "/")
	if !fs.ValidPath(name) || name == "." {
		return "", false
	}
	info, err := fs.Stat(m.fsys, name)
	if err != nil || !info.Mode().IsRegular() {
		return "", false
	}
	return m.dir + "/" + name, true
}
