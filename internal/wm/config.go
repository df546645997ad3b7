package wm

// FocusFollowsMouse selects the sloppy-focus policy at build time: when
// true, moving the pointer into a managed window focuses it without a
// click. Flip and rebuild to get click-to-focus only.
const FocusFollowsMouse = true
